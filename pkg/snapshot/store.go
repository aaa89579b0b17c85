package snapshot

import (
	"context"
	"fmt"
	"testing"

	"github.com/wctest-dev/wctest/pkg/serialize"
)

// Store persists canonical-markup snapshots by name. Load returns
// (nil, nil) when no snapshot exists under the name, so callers can
// distinguish "missing" from a transport failure.
type Store interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
}

// CheckConfig configures a snapshot check.
type CheckConfig struct {
	// Update writes the received form over the stored golden instead
	// of comparing against it.
	Update bool

	// Serialize holds the serializer options used to render the
	// received value and the stored golden form.
	Serialize []serialize.Option
}

// CheckOption configures a snapshot check.
type CheckOption func(*CheckConfig)

// WithUpdate turns the check into a golden update.
func WithUpdate() CheckOption {
	return func(c *CheckConfig) { c.Update = true }
}

// WithSerializeOptions appends serializer options for the check, e.g.
// serialize.WithoutShadow to keep shadow internals out of goldens.
func WithSerializeOptions(opts ...serialize.Option) CheckOption {
	return func(c *CheckConfig) { c.Serialize = append(c.Serialize, opts...) }
}

// Check serializes the received value and compares it against the
// stored golden snapshot. A missing golden is written on first use;
// with WithUpdate the golden is always rewritten. Goldens are stored in
// the rendered form, pretty-printed by default, while the comparison
// always runs on the normalized form, so the stored layout never
// affects the verdict. Mismatches fail the test with both sides
// pretty-printed.
func Check(tb testing.TB, store Store, name string, received any, opts ...CheckOption) {
	tb.Helper()

	cfg := CheckConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	rendered := serialize.Serialize(received, cfg.Serialize...)
	got := serialize.Normalize(rendered)
	ctx := context.Background()

	stored, err := store.Load(ctx, name)
	if err != nil {
		tb.Fatalf("snapshot %q: load failed: %v", name, err)
	}

	if stored == nil || cfg.Update {
		if err := store.Save(ctx, name, []byte(rendered)); err != nil {
			tb.Fatalf("snapshot %q: save failed: %v", name, err)
		}
		return
	}

	want := serialize.Normalize(string(stored))
	if got != want {
		tb.Error(diffMessage(name, want, got))
	}
}

func diffMessage(name, want, got string) string {
	return fmt.Sprintf("snapshot %q mismatch\nstored:\n%s\n\nreceived:\n%s",
		name, serialize.Prettify(want), serialize.Prettify(got))
}
