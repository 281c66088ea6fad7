package cliout

import "fmt"

// Override carries per-call presentation values. Nil fields fall through to
// the Console's custom settings and then to the built-in defaults.
type Override struct {
	Color      *Color
	Mark       *string
	ColorSpan  *ColorSpan
	ShowHeader *bool
}

// Presentation is the effective color, mark and layout policy of one label.
type Presentation struct {
	Color      Color
	Mark       string
	ColorSpan  ColorSpan
	ShowHeader bool
}

// Validate checks the fields o supplies.
func (o Override) Validate() error {
	if o.Color != nil && !o.Color.Valid() {
		return fmt.Errorf("%w: unrecognized color %q", ErrInvalidArgument, string(*o.Color))
	}
	if o.Mark != nil && *o.Mark == "" {
		return fmt.Errorf("%w: mark should not be empty", ErrInvalidArgument)
	}
	if o.ColorSpan != nil && !o.ColorSpan.Valid() {
		return fmt.Errorf("%w: color span should be one of 0, 1, 2 or 3, got %d", ErrInvalidArgument, *o.ColorSpan)
	}
	return nil
}

// Resolve computes the presentation of a label of the given kind. Each field
// is taken from the first layer that sets it: the override, the custom
// settings of c, then the built-in default.
func (c *Console) Resolve(kind LabelKind, o Override) (Presentation, error) {
	if !kind.Valid() {
		return Presentation{}, fmt.Errorf("%w: unknown label kind %q", ErrInvalidArgument, kind)
	}
	if err := o.Validate(); err != nil {
		return Presentation{}, err
	}

	c.mu.RLock()
	custom := c.custom
	c.mu.RUnlock()

	p := Presentation{
		Color:      kind.DefaultColor(),
		Mark:       kind.DefaultMark(),
		ColorSpan:  DefaultColorSpan,
		ShowHeader: DefaultShowHeader,
	}

	switch {
	case o.Color != nil:
		p.Color = *o.Color
	default:
		if col, ok := custom.colors[kind]; ok {
			p.Color = col
		}
	}

	switch {
	case o.Mark != nil:
		p.Mark = *o.Mark
	default:
		if mark, ok := custom.marks[kind]; ok {
			p.Mark = mark
		}
	}

	switch {
	case o.ColorSpan != nil:
		p.ColorSpan = *o.ColorSpan
	case custom.colorSpan != nil:
		p.ColorSpan = *custom.colorSpan
	}

	switch {
	case o.ShowHeader != nil:
		p.ShowHeader = *o.ShowHeader
	case custom.showHeader != nil:
		p.ShowHeader = *custom.showHeader
	}

	return p, nil
}
