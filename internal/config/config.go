package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownOption is returned by Set and Update for keys that are not part
// of the option registry. The key set is fixed at construction; no operation
// introduces new keys afterwards.
var ErrUnknownOption = errors.New("unknown config option")

// Config holds the live configuration values for the toolkit.
//
// Every collaborator that captures a *Config sees the same instance for the
// life of the process; mutations happen in place and are never performed by
// swapping the pointer. The container assumes a single cooperating writer:
// it carries no locking, and concurrent mutation from multiple goroutines is
// not supported.
type Config struct {
	opts   map[string]*Option
	values map[string]any
}

// New returns a Config populated with registry defaults.
func New() (*Config, error) {
	opts := Options()
	values := make(map[string]any, len(opts))
	for path, opt := range opts {
		normalized, err := opt.normalize(opt.Default)
		if err != nil {
			return nil, fmt.Errorf("default for %s: %w", path, err)
		}
		values[path] = normalized
	}
	return &Config{opts: opts, values: values}, nil
}

// Has reports whether key is part of the option set.
func (c *Config) Has(key string) bool {
	_, ok := c.opts[key]
	return ok
}

// Value returns the raw value for key and whether the key exists.
func (c *Config) Value(key string) (any, bool) {
	v, ok := c.values[key]
	if !ok {
		return nil, false
	}
	return copyValue(v), true
}

// Set validates and stores a single value. Unknown keys fail with
// ErrUnknownOption; invalid values fail with a validation error.
func (c *Config) Set(key string, value any) error {
	opt, ok := c.opts[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}
	normalized, err := opt.normalize(value)
	if err != nil {
		return err
	}
	c.values[key] = normalized
	return nil
}

// Update applies a bulk mutation in place. Every key must already exist and
// every value must validate; on any failure nothing is applied. Update never
// rebinds the receiver, so collaborators holding the same *Config observe
// the new values immediately.
func (c *Config) Update(values map[string]any) error {
	staged := make(map[string]any, len(values))
	for key, value := range values {
		opt, ok := c.opts[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownOption, key)
		}
		normalized, err := opt.normalize(value)
		if err != nil {
			return err
		}
		staged[key] = normalized
	}
	for key, value := range staged {
		c.values[key] = value
	}
	return nil
}

// Copy returns an independent snapshot. Mutating the copy never affects the
// original and vice versa.
func (c *Config) Copy() *Config {
	values := make(map[string]any, len(c.values))
	for key, value := range c.values {
		values[key] = copyValue(value)
	}
	return &Config{opts: c.opts, values: values}
}

// Values returns a detached key/value snapshot of the current state.
func (c *Config) Values() map[string]any {
	out := make(map[string]any, len(c.values))
	for key, value := range c.values {
		out[key] = copyValue(value)
	}
	return out
}

// Keys returns all option paths in sorted order.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.opts))
	for key := range c.opts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Option returns the definition for key, or nil when unknown.
func (c *Config) Option(key string) *Option {
	return c.opts[key]
}

// Float returns the value for a float option, or zero for unknown keys.
func (c *Config) Float(key string) float64 {
	if v, ok := c.values[key].(float64); ok {
		return v
	}
	return 0
}

// Int returns the value for an integer option, or zero for unknown keys.
func (c *Config) Int(key string) int {
	if v, ok := c.values[key].(int); ok {
		return v
	}
	return 0
}

// Bool returns the value for a boolean option, or false for unknown keys.
func (c *Config) Bool(key string) bool {
	if v, ok := c.values[key].(bool); ok {
		return v
	}
	return false
}

// String returns the value for a string-like option (string, path, color,
// enum), or "" for unknown keys.
func (c *Config) String(key string) string {
	if v, ok := c.values[key].(string); ok {
		return v
	}
	return ""
}

// StringSlice returns a detached copy of a string-list option.
func (c *Config) StringSlice(key string) []string {
	if v, ok := c.values[key].([]string); ok {
		out := make([]string, len(v))
		copy(out, v)
		return out
	}
	return nil
}

// Color parses a color option into a colorful.Color. Stored values are
// canonical hex, so the parse cannot fail for registry-validated values.
func (c *Config) Color(key string) colorful.Color {
	clr, err := colorful.Hex(c.String(key))
	if err != nil {
		return colorful.Color{}
	}
	return clr
}

// Path returns the normalized absolute path for a path option.
func (c *Config) Path(key string) string {
	return c.String(key)
}

func copyValue(value any) any {
	if list, ok := value.([]string); ok {
		out := make([]string, len(list))
		copy(out, list)
		return out
	}
	return value
}
