package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"keyframe/internal/config"
)

func TestNewPopulatesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, err := config.New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if got := cfg.Float("frame.height"); got != 8.0 {
		t.Fatalf("unexpected frame.height: got %v want 8.0", got)
	}
	if got := cfg.Int("frame.pixel_width"); got != 1920 {
		t.Fatalf("unexpected frame.pixel_width: %d", got)
	}
	if got := cfg.String("render.quality"); got != "high" {
		t.Fatalf("unexpected render.quality: %q", got)
	}
	if cfg.Bool("output.preview") {
		t.Fatal("expected output.preview false by default")
	}
	if got := cfg.String("camera.background_color"); got != "#000000" {
		t.Fatalf("unexpected background color: %q", got)
	}

	wantMedia := filepath.Join(tempHome, ".local", "share", "keyframe", "media")
	if got := cfg.Path("output.media_dir"); got != wantMedia {
		t.Fatalf("expected media dir expanded to %q, got %q", wantMedia, got)
	}
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected no config file in temp HOME")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if got := cfg.Float("frame.rate"); got != 60.0 {
		t.Fatalf("unexpected frame.rate: %v", got)
	}
}

func TestLoadLayersProjectOverUser(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	userPath := filepath.Join(tempHome, ".config", "keyframe", "keyframe.toml")
	writeFile(t, userPath, "[frame]\nheight = 4.0\nrate = 30.0\n")

	projectDir := t.TempDir()
	writeFile(t, filepath.Join(projectDir, "keyframe.toml"), "[frame]\nheight = 6.0\n")
	chdir(t, projectDir)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if !strings.HasSuffix(resolved, "keyframe.toml") || strings.Contains(resolved, ".config") {
		t.Fatalf("expected project file to win resolution, got %q", resolved)
	}
	if got := cfg.Float("frame.height"); got != 6.0 {
		t.Fatalf("project layer should override user: got %v", got)
	}
	if got := cfg.Float("frame.rate"); got != 30.0 {
		t.Fatalf("user layer value should survive when project is silent: got %v", got)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[render]\nquality = \"production\"\n\n[camera]\nbackground_color = \"#1F77B4\"\n")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, path)
	}
	if got := cfg.String("render.quality"); got != "production" {
		t.Fatalf("unexpected quality: %q", got)
	}
	if got := cfg.String("camera.background_color"); got != "#1f77b4" {
		t.Fatalf("expected canonical lowercase hex, got %q", got)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "[frame]\nbogus = 1\n")

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	} else if !errors.Is(err, config.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cases := map[string]string{
		"range": "[camera]\nbackground_opacity = 1.5\n",
		"enum":  "[render]\nquality = \"ultra\"\n",
		"type":  "[frame]\nheight = \"tall\"\n",
		"color": "[camera]\nbackground_color = \"blue-ish\"\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), name+".toml")
		writeFile(t, path, body)
		if _, _, _, err := config.Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestSetRejectsUnknownKeyAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	cfg := mustNew(t)

	if err := cfg.Set("bogus.key", 1); !errors.Is(err, config.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}

	if err := cfg.Set("logging.dir", "~/logs"); err != nil {
		t.Fatalf("Set logging.dir: %v", err)
	}
	if got := cfg.Path("logging.dir"); got != filepath.Join(tempHome, "logs") {
		t.Fatalf("expected expanded path, got %q", got)
	}
}

func TestUpdateIsStrictAndAtomic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	err := cfg.Update(map[string]any{
		"frame.height": 12.0,
		"bogus.key":    1,
	})
	if !errors.Is(err, config.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if got := cfg.Float("frame.height"); got != 8.0 {
		t.Fatalf("failed Update must not apply partially: frame.height = %v", got)
	}
	if _, ok := cfg.Value("bogus.key"); ok {
		t.Fatal("unknown key must never be introduced")
	}

	if err := cfg.Update(map[string]any{"frame.height": 12.0, "frame.rate": 24}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := cfg.Float("frame.height"); got != 12.0 {
		t.Fatalf("unexpected frame.height after update: %v", got)
	}
	if got := cfg.Float("frame.rate"); got != 24.0 {
		t.Fatalf("integer input should coerce for float options: %v", got)
	}
}

func TestCopyIndependence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	snapshot := cfg.Copy()
	if err := snapshot.Set("frame.height", 100.0); err != nil {
		t.Fatalf("Set on copy: %v", err)
	}
	if got := cfg.Float("frame.height"); got != 8.0 {
		t.Fatalf("mutating the copy must not affect the original: %v", got)
	}

	if err := cfg.Set("frame.height", 2.0); err != nil {
		t.Fatalf("Set on original: %v", err)
	}
	if got := snapshot.Float("frame.height"); got != 100.0 {
		t.Fatalf("mutating the original must not affect the copy: %v", got)
	}
}

func TestStringSliceDetachedAndValidated(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	if err := cfg.Set("render.scenes", []any{"Intro", "Credits"}); err != nil {
		t.Fatalf("Set render.scenes: %v", err)
	}
	scenes := cfg.StringSlice("render.scenes")
	if len(scenes) != 2 || scenes[0] != "Intro" {
		t.Fatalf("unexpected scenes: %v", scenes)
	}

	scenes[0] = "Mutated"
	if got := cfg.StringSlice("render.scenes"); got[0] != "Intro" {
		t.Fatalf("StringSlice must return a detached copy, got %v", got)
	}

	if err := cfg.Set("render.scenes", []any{"Intro", 7}); err == nil {
		t.Fatal("expected error for mixed-type list")
	}
}

func TestValuesIsDetached(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	values := cfg.Values()
	values["frame.height"] = 99.0
	if got := cfg.Float("frame.height"); got != 8.0 {
		t.Fatalf("Values snapshot must be detached: %v", got)
	}
}

func TestKeysSortedAndMembership(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)

	keys := cfg.Keys()
	if len(keys) == 0 {
		t.Fatal("expected registered keys")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
	if !cfg.Has("frame.height") {
		t.Fatal("expected frame.height to be registered")
	}
	if cfg.Has("frame.bogus") {
		t.Fatal("did not expect frame.bogus")
	}
}

func TestParseCLISettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := mustNew(t)
	if err := cfg.Set("cli.color", "never"); err != nil {
		t.Fatalf("Set cli.color: %v", err)
	}

	settings := config.ParseCLISettings(cfg)
	if settings.Color != "never" {
		t.Fatalf("unexpected color mode: %q", settings.Color)
	}
	if !settings.Progress {
		t.Fatal("expected progress enabled by default")
	}
	if settings.TableStyle != "rounded" {
		t.Fatalf("unexpected table style: %q", settings.TableStyle)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[frame]") {
		t.Fatalf("sample missing frame section: %s", contents)
	}

	// The sample must load cleanly as a config file.
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}

func mustNew(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return cfg
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
