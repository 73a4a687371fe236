package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

const (
	userConfigPath    = "~/.config/keyframe/keyframe.toml"
	projectConfigName = "keyframe.toml"
)

// DefaultConfigPath returns the absolute path of the user configuration file.
func DefaultConfigPath() (string, error) {
	return expandPath(userConfigPath)
}

// Load digests the layered configuration sources into a Config.
//
// Layering, lowest priority first: registry defaults, the user file at
// ~/.config/keyframe/keyframe.toml, then a project-local keyframe.toml in the
// working directory. When path is non-empty it replaces the file probing and
// is read as the sole file source. Any parse or validation failure is fatal:
// the error propagates and no Config is returned.
//
// The returned resolved path is the highest-priority file considered, and
// exists reports whether any file source was actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg, err := New()
	if err != nil {
		return nil, "", false, err
	}

	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return nil, "", false, err
		}
		exists, err := mergeFile(cfg, expanded)
		if err != nil {
			return nil, "", false, err
		}
		return cfg, expanded, exists, nil
	}

	userPath, err := expandPath(userConfigPath)
	if err != nil {
		return nil, "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return nil, "", false, err
	}

	userExists, err := mergeFile(cfg, userPath)
	if err != nil {
		return nil, "", false, err
	}
	projectExists, err := mergeFile(cfg, projectPath)
	if err != nil {
		return nil, "", false, err
	}

	resolved := userPath
	if projectExists {
		resolved = projectPath
	}
	return cfg, resolved, userExists || projectExists, nil
}

// mergeFile decodes a TOML file and applies it over cfg. A missing file is
// not an error; unknown keys and invalid values are.
func mergeFile(cfg *Config, path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	var raw map[string]any
	if err := toml.NewDecoder(file).Decode(&raw); err != nil {
		return false, fmt.Errorf("parse config %s: %w", path, err)
	}

	flat := make(map[string]any)
	flatten("", raw, flat)
	if err := cfg.Update(flat); err != nil {
		return false, fmt.Errorf("digest config %s: %w", path, err)
	}
	return true, nil
}

// flatten converts nested TOML tables into dotted option paths. Nesting past
// the levels the registry knows about surfaces later as an unknown-option
// error from Update.
func flatten(prefix string, raw map[string]any, out map[string]any) {
	for key, value := range raw {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if table, ok := value.(map[string]any); ok {
			flatten(path, table, out)
			continue
		}
		out[path] = value
	}
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// EnsureDirectories creates the directories the toolkit writes into.
func (c *Config) EnsureDirectories() error {
	for _, key := range []string{"output.media_dir", "logging.dir"} {
		dir := c.Path(key)
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CreateSample writes a sample configuration file to the specified location.
// A sidecar flock serializes concurrent writers aiming at the same target.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock config %s: %w", path, err)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(path + ".lock")
	}()

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sections returns the option paths grouped by section, each group sorted.
func (c *Config) Sections() map[string][]string {
	out := make(map[string][]string)
	for path, opt := range c.opts {
		section := opt.section()
		out[section] = append(out[section], path)
	}
	for _, paths := range out {
		sort.Strings(paths)
	}
	return out
}
