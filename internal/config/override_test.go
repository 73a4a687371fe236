package config_test

import (
	"errors"
	"testing"
)

func TestOverrideAppliesAndRestores(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	before := cfg.Values()

	restore, err := cfg.Override(map[string]any{"frame.height": 100.0})
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	if got := cfg.Float("frame.height"); got != 100.0 {
		t.Fatalf("expected override applied, got %v", got)
	}
	restore()

	after := cfg.Values()
	for key, want := range before {
		if !equalValue(after[key], want) {
			t.Fatalf("key %s not restored: got %v want %v", key, after[key], want)
		}
	}
}

func TestWithOverridesRestoresOnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	boom := errors.New("boom")
	err := cfg.WithOverrides(map[string]any{"frame.height": 100.0}, func() error {
		if got := cfg.Float("frame.height"); got != 100.0 {
			t.Fatalf("expected override visible inside scope, got %v", got)
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error to propagate unchanged, got %v", err)
	}
	if got := cfg.Float("frame.height"); got != 8.0 {
		t.Fatalf("expected restore after error, got %v", got)
	}
}

func TestWithOverridesRestoresOnPanic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = cfg.WithOverrides(map[string]any{"frame.height": 100.0}, func() error {
			panic("scene exploded")
		})
	}()

	if got := cfg.Float("frame.height"); got != 8.0 {
		t.Fatalf("expected restore after panic, got %v", got)
	}
}

func TestOverrideDropsUnknownKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	restore, err := cfg.Override(map[string]any{
		"frame.height": 100.0,
		"bogus_key":    1,
	})
	if err != nil {
		t.Fatalf("unknown override keys must not error: %v", err)
	}
	defer restore()

	if got := cfg.Float("frame.height"); got != 100.0 {
		t.Fatalf("expected known key applied, got %v", got)
	}
	if cfg.Has("bogus_key") {
		t.Fatal("unknown key must never enter the config")
	}
	if _, ok := cfg.Value("bogus_key"); ok {
		t.Fatal("unknown key must have no value")
	}
}

func TestOverrideRejectsInvalidValuesWithoutApplying(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	_, err := cfg.Override(map[string]any{
		"frame.height": 100.0,
		"frame.rate":   "fast",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := cfg.Float("frame.height"); got != 8.0 {
		t.Fatalf("failed override must leave config untouched, got %v", got)
	}
}

func TestOverrideKeepsInstanceIdentity(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)
	alias := cfg

	err := cfg.WithOverrides(map[string]any{"frame.height": 100.0}, func() error {
		if alias != cfg {
			t.Fatal("config identity changed inside scope")
		}
		if got := alias.Float("frame.height"); got != 100.0 {
			t.Fatalf("alias must observe override, got %v", got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithOverrides: %v", err)
	}
	if alias != cfg {
		t.Fatal("config identity changed across scope")
	}
	if got := alias.Float("frame.height"); got != 8.0 {
		t.Fatalf("alias must observe restore, got %v", got)
	}
}

func TestOverrideFromAnotherConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	other := cfg.Copy()
	if err := other.Set("render.quality", "low"); err != nil {
		t.Fatalf("Set on other: %v", err)
	}

	err := cfg.WithOverrides(other.Values(), func() error {
		if got := cfg.String("render.quality"); got != "low" {
			t.Fatalf("expected quality from other config, got %q", got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithOverrides: %v", err)
	}
	if got := cfg.String("render.quality"); got != "high" {
		t.Fatalf("expected restore, got %q", got)
	}
}

func equalValue(a, b any) bool {
	as, aok := a.([]string)
	bs, bok := b.([]string)
	if aok || bok {
		if !aok || !bok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if as[i] != bs[i] {
				return false
			}
		}
		return true
	}
	return a == b
}
