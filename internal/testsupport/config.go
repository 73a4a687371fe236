// Package testsupport provides builders shared by Keyframe tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"keyframe/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(testing.TB, *config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It applies any provided options after the directory defaults.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg, err := config.New()
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	if err := cfg.Set("output.media_dir", filepath.Join(base, "media")); err != nil {
		t.Fatalf("set media dir: %v", err)
	}
	if err := cfg.Set("logging.dir", filepath.Join(base, "logs")); err != nil {
		t.Fatalf("set log dir: %v", err)
	}

	for _, opt := range opts {
		opt(t, cfg)
	}

	return cfg
}

// WithValue sets an arbitrary option on the test config.
func WithValue(key string, value any) ConfigOption {
	return func(t testing.TB, cfg *config.Config) {
		if err := cfg.Set(key, value); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}
}

// WithQuality sets the render quality preset on the test config.
func WithQuality(quality string) ConfigOption {
	return WithValue("render.quality", quality)
}
