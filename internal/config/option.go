package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// OptionType identifies the data type of a configuration option.
type OptionType uint8

const (
	// TypeFloat is a 64-bit floating point value.
	TypeFloat OptionType = iota
	// TypeInt is an integer value.
	TypeInt
	// TypeBool is a boolean value.
	TypeBool
	// TypeString is a free-form string value.
	TypeString
	// TypeStringList is a list of strings.
	TypeStringList
	// TypePath is a filesystem path; values are tilde-expanded and made absolute.
	TypePath
	// TypeColor is a hex color such as "#1f77b4"; stored canonically lowercased.
	TypeColor
	// TypeEnum is a string drawn from a fixed set of choices.
	TypeEnum
)

// String returns the human-readable name of the type.
func (t OptionType) String() string {
	switch t {
	case TypeFloat:
		return "float"
	case TypeInt:
		return "integer"
	case TypeBool:
		return "boolean"
	case TypeString:
		return "string"
	case TypeStringList:
		return "string list"
	case TypePath:
		return "path"
	case TypeColor:
		return "color"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Option defines a single configuration option: its dotted path, type,
// default, constraints, and documentation. The full set of options is fixed
// when the registry is built; values change, the key set never does.
type Option struct {
	// Path is the dotted option name, e.g. "frame.height". The segment
	// before the first dot is the TOML section the option lives in.
	Path string

	Type    OptionType
	Default any

	// Min and Max bound numeric options (nil means unbounded).
	Min *float64
	Max *float64

	// Choices lists the allowed values for enum options.
	Choices []string

	// Doc is a one-line description shown by `keyframe config show`.
	Doc string
}

// normalize coerces a raw value (typically from a TOML decode or an override
// map) into the option's canonical representation, validating it on the way.
func (o *Option) normalize(value any) (any, error) {
	switch o.Type {
	case TypeFloat:
		f, ok := asFloat(value)
		if !ok {
			return nil, fmt.Errorf("%s: expected float, got %T", o.Path, value)
		}
		if err := o.checkRange(f); err != nil {
			return nil, err
		}
		return f, nil
	case TypeInt:
		n, ok := asInt(value)
		if !ok {
			return nil, fmt.Errorf("%s: expected integer, got %T", o.Path, value)
		}
		if err := o.checkRange(float64(n)); err != nil {
			return nil, err
		}
		return n, nil
	case TypeBool:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%s: expected boolean, got %T", o.Path, value)
		}
		return b, nil
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%s: expected string, got %T", o.Path, value)
		}
		return s, nil
	case TypeStringList:
		list, err := asStringList(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.Path, err)
		}
		return list, nil
	case TypePath:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%s: expected path string, got %T", o.Path, value)
		}
		expanded, err := expandPath(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.Path, err)
		}
		return expanded, nil
	case TypeColor:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%s: expected hex color string, got %T", o.Path, value)
		}
		clr, err := colorful.Hex(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%s: invalid color %q: %w", o.Path, s, err)
		}
		return strings.ToLower(clr.Hex()), nil
	case TypeEnum:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%s: expected string, got %T", o.Path, value)
		}
		s = strings.ToLower(strings.TrimSpace(s))
		for _, choice := range o.Choices {
			if s == choice {
				return s, nil
			}
		}
		return nil, fmt.Errorf("%s: value %q must be one of %s", o.Path, s, strings.Join(o.Choices, ", "))
	default:
		return nil, fmt.Errorf("%s: unsupported option type", o.Path)
	}
}

func (o *Option) checkRange(f float64) error {
	if o.Min != nil && f < *o.Min {
		return fmt.Errorf("%s: value %v is less than minimum %v", o.Path, f, *o.Min)
	}
	if o.Max != nil && f > *o.Max {
		return fmt.Errorf("%s: value %v is greater than maximum %v", o.Path, f, *o.Max)
	}
	return nil
}

// section returns the option's TOML section (the path segment before the
// first dot).
func (o *Option) section() string {
	if idx := strings.Index(o.Path, "."); idx >= 0 {
		return o.Path[:idx]
	}
	return o.Path
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asStringList(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string list, found %T element", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string list, got %T", value)
	}
}

// minValue creates a pointer to a float64 for use as Option.Min.
func minValue(v float64) *float64 { return &v }

// maxValue creates a pointer to a float64 for use as Option.Max.
func maxValue(v float64) *float64 { return &v }
