package progress

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/gousaiyang/colorlabels/cliout"
)

// Mode is the rendering style of a progress label.
type Mode int

const (
	// ModeStatic renders the label once, like any other label.
	ModeStatic Mode = iota
	// ModeSpin cycles a spinning glyph in place of the mark or after the message.
	ModeSpin
	// ModeExpand appends a growing row of characters to the message.
	ModeExpand
	// ModeMove slides a block of characters inside brackets.
	ModeMove
	// ModeDeterminate draws a bar driven by Session.Update.
	ModeDeterminate
)

var modeNames = []string{"static", "spin", "expand", "move", "determinate"}

// String returns the lowercase name of m.
func (m Mode) String() string {
	if m < ModeStatic || m > ModeDeterminate {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode converts a mode name into a Mode.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Mode(i), nil
		}
	}
	return ModeStatic, fmt.Errorf("%w: invalid progress mode %q (valid options: %s)",
		cliout.ErrInvalidArgument, name, strings.Join(modeNames, ", "))
}

// animated reports whether m runs a background animation loop.
func (m Mode) animated() bool {
	return m == ModeSpin || m == ModeExpand || m == ModeMove
}

// ModeConfig is the validated configuration of one progress mode. It is
// implemented by Static, SpinConfig, ExpandConfig, MoveConfig and
// DeterminateConfig; start from the Default* constructors and override
// the fields you need.
type ModeConfig interface {
	Mode() Mode
	Validate() error
	start(s *Session) error
}

// SpinPosition selects where the spinning glyph is drawn.
type SpinPosition string

const (
	// SpinAtMark replaces the mark with the spinning glyph.
	SpinAtMark SpinPosition = "mark"
	// SpinAtTail appends the spinning glyph to the message.
	SpinAtTail SpinPosition = "tail"
)

// MoveStyle selects how the block in ModeMove travels.
type MoveStyle string

const (
	// MoveLoop always rotates in the same direction, wrapping around.
	MoveLoop MoveStyle = "loop"
	// MoveReflect bounces between the edges of the track.
	MoveReflect MoveStyle = "reflect"
)

// Static renders a progress label once and returns.
type Static struct{}

// SpinConfig configures ModeSpin.
type SpinConfig struct {
	Position SpinPosition
	Interval time.Duration
	// Erase blanks the line on stop instead of printing a final label.
	Erase bool
}

// ExpandConfig configures ModeExpand.
type ExpandConfig struct {
	Char     rune
	Width    int
	Interval time.Duration
	Erase    bool
}

// MoveConfig configures ModeMove.
type MoveConfig struct {
	Char     rune
	Num      int
	Width    int
	Style    MoveStyle
	Interval time.Duration
	Erase    bool
}

// DeterminateConfig configures ModeDeterminate.
type DeterminateConfig struct {
	CharDone   rune
	CharHead   rune
	CharUndone rune
	// Width is the number of cells between the brackets. Zero hides the bar.
	Width int
	// Cleanup blanks the line on stop even when Erase is false.
	Cleanup bool
	Erase   bool
}

// DefaultSpin returns the built-in spin settings.
func DefaultSpin() SpinConfig {
	return SpinConfig{
		Position: SpinAtMark,
		Interval: 100 * time.Millisecond,
	}
}

// DefaultExpand returns the built-in expand settings.
func DefaultExpand() ExpandConfig {
	return ExpandConfig{
		Char:     '.',
		Width:    3,
		Interval: time.Second,
	}
}

// DefaultMove returns the built-in move settings.
func DefaultMove() MoveConfig {
	return MoveConfig{
		Char:     '.',
		Num:      3,
		Width:    12,
		Style:    MoveLoop,
		Interval: 100 * time.Millisecond,
	}
}

// DefaultDeterminate returns the built-in determinate settings.
func DefaultDeterminate() DeterminateConfig {
	return DeterminateConfig{
		CharDone:   '=',
		CharHead:   '>',
		CharUndone: ' ',
		Width:      40,
	}
}

// Mode implements ModeConfig.
func (Static) Mode() Mode { return ModeStatic }

// Mode implements ModeConfig.
func (SpinConfig) Mode() Mode { return ModeSpin }

// Mode implements ModeConfig.
func (ExpandConfig) Mode() Mode { return ModeExpand }

// Mode implements ModeConfig.
func (MoveConfig) Mode() Mode { return ModeMove }

// Mode implements ModeConfig.
func (DeterminateConfig) Mode() Mode { return ModeDeterminate }

// Validate implements ModeConfig.
func (Static) Validate() error { return nil }

// Validate implements ModeConfig.
func (c SpinConfig) Validate() error {
	if c.Position != SpinAtMark && c.Position != SpinAtTail {
		return fmt.Errorf("%w: 'position' should be %q or %q, got %q",
			cliout.ErrInvalidArgument, SpinAtMark, SpinAtTail, c.Position)
	}
	return checkInterval(c.Interval)
}

// Validate implements ModeConfig.
func (c ExpandConfig) Validate() error {
	if err := checkChar(c.Char, "char"); err != nil {
		return err
	}
	if err := checkMinimum(c.Width, 2, "width"); err != nil {
		return err
	}
	return checkInterval(c.Interval)
}

// Validate implements ModeConfig.
func (c MoveConfig) Validate() error {
	if err := checkChar(c.Char, "char"); err != nil {
		return err
	}
	if c.Char == ' ' {
		return fmt.Errorf("%w: 'char' cannot be space", cliout.ErrInvalidArgument)
	}
	if err := checkMinimum(c.Num, 1, "num"); err != nil {
		return err
	}
	if err := checkMinimum(c.Width, 2, "width"); err != nil {
		return err
	}
	if c.Num >= c.Width {
		return fmt.Errorf("%w: 'num' should be less than 'width' (num=%d, width=%d)",
			cliout.ErrInvalidArgument, c.Num, c.Width)
	}
	if c.Style != MoveLoop && c.Style != MoveReflect {
		return fmt.Errorf("%w: 'style' should be %q or %q, got %q",
			cliout.ErrInvalidArgument, MoveLoop, MoveReflect, c.Style)
	}
	return checkInterval(c.Interval)
}

// Validate implements ModeConfig.
func (c DeterminateConfig) Validate() error {
	if err := checkChar(c.CharDone, "char_done"); err != nil {
		return err
	}
	if err := checkChar(c.CharHead, "char_head"); err != nil {
		return err
	}
	if err := checkChar(c.CharUndone, "char_undone"); err != nil {
		return err
	}
	return checkMinimum(c.Width, 0, "width")
}

func checkInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: 'interval' should be positive, got %s", cliout.ErrInvalidArgument, d)
	}
	return nil
}

func checkChar(r rune, field string) error {
	if r == 0 || !unicode.IsPrint(r) {
		return fmt.Errorf("%w: %q should be one printable character", cliout.ErrInvalidArgument, field)
	}
	return nil
}

func checkMinimum(v, minimum int, field string) error {
	if v < minimum {
		return fmt.Errorf("%w: %q should be at least %d, got %d", cliout.ErrInvalidArgument, field, minimum, v)
	}
	return nil
}
