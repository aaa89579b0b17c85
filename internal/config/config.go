package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	harness "github.com/wctest-dev/wctest/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "wctest.yaml"

	// DefaultSnapshotDir is where goldens live when not configured.
	DefaultSnapshotDir = "testdata/snapshots"
)

// Config is the harness configuration loaded from wctest.yaml.
type Config struct {
	// Snapshot configures golden storage.
	Snapshot SnapshotConfig `yaml:"snapshot,omitempty"`

	// Serialize configures serializer defaults. The zero value keeps
	// the built-in defaults (shadow included, pretty, styles excluded).
	Serialize SerializeConfig `yaml:"serialize,omitempty"`
}

// SnapshotConfig configures where goldens are stored.
type SnapshotConfig struct {
	// Dir is the local snapshot directory.
	Dir string `yaml:"dir,omitempty"`

	// Update rewrites goldens instead of comparing against them.
	Update bool `yaml:"update,omitempty"`

	// S3 enables the remote store when Bucket is set.
	S3 S3Config `yaml:"s3,omitempty"`
}

// S3Config points at a shared remote snapshot bucket.
type S3Config struct {
	Bucket string `yaml:"bucket,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
}

// SerializeConfig overrides serializer defaults. Fields are phrased as
// deviations from the defaults so the zero value means "default".
type SerializeConfig struct {
	OmitShadow bool `yaml:"omitShadow,omitempty"`
	Compact    bool `yaml:"compact,omitempty"`
	KeepStyles bool `yaml:"keepStyles,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Snapshot: SnapshotConfig{Dir: DefaultSnapshotDir},
	}
}

// Load reads configuration from the given file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, harness.New("C001", harness.CategoryConfig,
			"cannot read %s", path).Wrap(err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, harness.New("C002", harness.CategoryConfig,
			"cannot parse %s", path).Wrap(err).
			WithSuggestion("check the YAML syntax; see wctest.yaml reference")
	}
	if cfg.Snapshot.Dir == "" {
		cfg.Snapshot.Dir = DefaultSnapshotDir
	}
	return cfg, nil
}

// LoadFromWorkingDir searches the working directory and its parents for
// wctest.yaml. When no file is found the defaults are returned, not an
// error: configuration is optional.
func LoadFromWorkingDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}
