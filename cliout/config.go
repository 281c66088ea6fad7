package cliout

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorSpan controls how much of a rendered line receives color.
type ColorSpan int

const (
	// SpanNone renders without any color codes.
	SpanNone ColorSpan = iota
	// SpanMark colors the mark glyph inside the header brackets.
	SpanMark
	// SpanHeader colors the whole "[mark]" header.
	SpanHeader
	// SpanLine colors the header and the message as one unit.
	SpanLine
)

// Built-in presentation defaults.
const (
	DefaultColorSpan  = SpanLine
	DefaultShowHeader = true
)

// Valid reports whether s is one of the four defined spans.
func (s ColorSpan) Valid() bool {
	return s >= SpanNone && s <= SpanLine
}

// Options is a configuration request for a Console. Nil or absent fields
// leave the current setting untouched.
type Options struct {
	ColorSpan  *ColorSpan
	ShowHeader *bool
	Colors     map[LabelKind]Color
	Marks      map[LabelKind]string
}

// Ptr returns a pointer to v. It is a convenience for filling Options and Override.
func Ptr[T any](v T) *T {
	return &v
}

// Validate checks every field of o without applying anything.
func (o Options) Validate() error {
	if o.ColorSpan != nil && !o.ColorSpan.Valid() {
		return fmt.Errorf("%w: color span should be one of 0, 1, 2 or 3, got %d", ErrInvalidArgument, *o.ColorSpan)
	}
	for kind, c := range o.Colors {
		if !kind.Valid() {
			return fmt.Errorf("%w: unknown label kind %q", ErrInvalidArgument, kind)
		}
		if !c.Valid() {
			return fmt.Errorf("%w: unrecognized color %q for %s", ErrInvalidArgument, string(c), kind)
		}
	}
	for kind, mark := range o.Marks {
		if !kind.Valid() {
			return fmt.Errorf("%w: unknown label kind %q", ErrInvalidArgument, kind)
		}
		if mark == "" {
			return fmt.Errorf("%w: mark for %s should not be empty", ErrInvalidArgument, kind)
		}
	}
	return nil
}

// settings holds the process-wide custom presentation values. A nil pointer
// or missing map entry means "unset".
type settings struct {
	colorSpan  *ColorSpan
	showHeader *bool
	colors     map[LabelKind]Color
	marks      map[LabelKind]string
}

// Configure validates opts and then applies it. Nothing is applied when
// validation fails.
func (c *Console) Configure(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if opts.ColorSpan != nil {
		span := *opts.ColorSpan
		c.custom.colorSpan = &span
	}
	if opts.ShowHeader != nil {
		show := *opts.ShowHeader
		c.custom.showHeader = &show
	}
	if len(opts.Colors) > 0 {
		colors := make(map[LabelKind]Color, len(c.custom.colors)+len(opts.Colors))
		for k, v := range c.custom.colors {
			colors[k] = v
		}
		for k, v := range opts.Colors {
			colors[k] = v
		}
		c.custom.colors = colors
	}
	if len(opts.Marks) > 0 {
		marks := make(map[LabelKind]string, len(c.custom.marks)+len(opts.Marks))
		for k, v := range c.custom.marks {
			marks[k] = v
		}
		for k, v := range opts.Marks {
			marks[k] = v
		}
		c.custom.marks = marks
	}
	return nil
}

// ConfigureMap applies settings given as named keys: "colorSpan",
// "showHeader", "<kind>Color" and "<kind>Mark" for every label kind.
// Snake case ("error_mark") is accepted too. Unknown keys and type
// mismatches fail with ErrInvalidArgument.
func (c *Console) ConfigureMap(values map[string]any) error {
	opts, err := ParseOptions(values)
	if err != nil {
		return err
	}
	return c.Configure(opts)
}

// Reset discards every custom setting, restoring the built-in defaults.
func (c *Console) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom = settings{}
}

// ParseOptions converts a keyed configuration into Options. Besides the flat
// keys accepted by ConfigureMap, nested "colors" and "marks" maps keyed by
// label kind are accepted.
func ParseOptions(values map[string]any) (Options, error) {
	var opts Options
	for key, value := range values {
		if err := parseOption(&opts, key, value); err != nil {
			return Options{}, err
		}
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func parseOption(opts *Options, key string, value any) error {
	norm := normalizeKey(key)
	switch norm {
	case "colorspan":
		n, ok := asInt(value)
		if !ok {
			return fmt.Errorf("%w: %q should be an integer", ErrInvalidArgument, key)
		}
		span := ColorSpan(n)
		opts.ColorSpan = &span
		return nil
	case "showheader":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %q should be a boolean", ErrInvalidArgument, key)
		}
		opts.ShowHeader = &b
		return nil
	case "colors", "marks":
		nested, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q should be a mapping of label kinds", ErrInvalidArgument, key)
		}
		suffix := strings.TrimSuffix(norm, "s")
		for kind, v := range nested {
			if err := parseOption(opts, kind+suffix, v); err != nil {
				return err
			}
		}
		return nil
	}

	for _, kind := range allKinds {
		switch norm {
		case string(kind) + "color":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: %q should be a string", ErrInvalidArgument, key)
			}
			col, err := ParseColor(s)
			if err != nil {
				return err
			}
			if opts.Colors == nil {
				opts.Colors = make(map[LabelKind]Color)
			}
			opts.Colors[kind] = col
			return nil
		case string(kind) + "mark":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: %q should be a string", ErrInvalidArgument, key)
			}
			if opts.Marks == nil {
				opts.Marks = make(map[LabelKind]string)
			}
			opts.Marks[kind] = s
			return nil
		}
	}
	return fmt.Errorf("%w: unknown configuration key %q", ErrInvalidArgument, key)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(key))
}

// asInt accepts any integer type, and floats with an integral value since
// JSON decoders produce float64 for every number.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

// LoadOptions reads a YAML presentation configuration using the same keys
// as ConfigureMap. An empty document yields empty Options.
//
// Example:
//
//	colorSpan: 2
//	showHeader: true
//	errorMark: X
//	colors:
//	  info: bright-blue
func LoadOptions(r io.Reader) (Options, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("%w: failed to parse configuration: %w", ErrInvalidArgument, err)
	}
	return ParseOptions(raw)
}

// LoadOptionsFile reads a YAML presentation configuration file.
func LoadOptionsFile(path string) (Options, error) {
	if path == "" {
		return Options{}, fmt.Errorf("%w: empty configuration path", ErrInvalidArgument)
	}
	// #nosec G304 -- configuration path is supplied by the user on purpose
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Options{}, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer f.Close()

	opts, err := LoadOptions(f)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}
