package snapshot

import (
	"testing"

	"github.com/wctest-dev/wctest/internal/config"
	"github.com/wctest-dev/wctest/pkg/serialize"
)

// CheckGolden is Check wired to the project's wctest.yaml: the local
// store rooted at the configured snapshot directory, update mode and
// serializer overrides taken from the config. The S3 store is never
// selected implicitly since it needs a caller-supplied client; pass one
// to Check directly.
func CheckGolden(tb testing.TB, name string, received any) {
	tb.Helper()

	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		tb.Fatalf("snapshot %q: config: %v", name, err)
	}

	var sopts []serialize.Option
	if cfg.Serialize.OmitShadow {
		sopts = append(sopts, serialize.WithoutShadow())
	}
	if cfg.Serialize.Compact {
		sopts = append(sopts, serialize.Compact())
	}
	if cfg.Serialize.KeepStyles {
		sopts = append(sopts, serialize.WithStyles())
	}

	opts := []CheckOption{WithSerializeOptions(sopts...)}
	if cfg.Snapshot.Update {
		opts = append(opts, WithUpdate())
	}
	Check(tb, NewLocalStore(cfg.Snapshot.Dir), name, received, opts...)
}
