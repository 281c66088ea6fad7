package cliout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
)

// Color is an ANSI SGR foreground sequence, or ColorNone.
type Color string

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"

	// ColorNone leaves the terminal color unchanged.
	ColorNone Color = ""

	// Foreground colors
	Black   Color = "\033[30m"
	Red     Color = "\033[31m"
	Green   Color = "\033[32m"
	Yellow  Color = "\033[33m"
	Blue    Color = "\033[34m"
	Magenta Color = "\033[35m"
	Cyan    Color = "\033[36m"
	White   Color = "\033[37m"

	// Bright foreground colors
	BrightBlack   Color = "\033[90m"
	BrightRed     Color = "\033[91m"
	BrightGreen   Color = "\033[92m"
	BrightYellow  Color = "\033[93m"
	BrightBlue    Color = "\033[94m"
	BrightMagenta Color = "\033[95m"
	BrightCyan    Color = "\033[96m"
	BrightWhite   Color = "\033[97m"
)

// ClearLineSeq returns the cursor to column zero and erases the rest of the line.
const ClearLineSeq = "\r\033[K"

// colorNames maps the names accepted by ParseColor to their SGR attributes.
var colorNames = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright-black":   color.FgHiBlack,
	"bright-red":     color.FgHiRed,
	"bright-green":   color.FgHiGreen,
	"bright-yellow":  color.FgHiYellow,
	"bright-blue":    color.FgHiBlue,
	"bright-magenta": color.FgHiMagenta,
	"bright-cyan":    color.FgHiCyan,
	"bright-white":   color.FgHiWhite,
}

// ColorCode builds the escape sequence for an SGR color number.
func ColorCode(n int) Color {
	return Color(fmt.Sprintf("\033[%dm", n))
}

// Valid reports whether c is one of the recognized color tokens.
func (c Color) Valid() bool {
	if c == ColorNone {
		return true
	}
	for _, attr := range colorNames {
		if c == ColorCode(int(attr)) {
			return true
		}
	}
	return false
}

// ParseColor converts a color name such as "red", "bright-cyan" or "none"
// into a Color. Underscores and spaces are accepted in place of hyphens, and
// a raw escape sequence is accepted if it is a recognized token.
func ParseColor(name string) (Color, error) {
	if c := Color(name); c != ColorNone && c.Valid() {
		return c, nil
	}
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	key = strings.Replace(key, "hi-", "bright-", 1)
	if key == "none" || key == "" {
		return ColorNone, nil
	}
	if attr, ok := colorNames[key]; ok {
		return ColorCode(int(attr)), nil
	}
	return ColorNone, fmt.Errorf("%w: unknown color %q", ErrInvalidArgument, name)
}

// ColorNames returns the names accepted by ParseColor, excluding "none".
func ColorNames() []string {
	names := make([]string, 0, len(colorNames))
	for name := range colorNames {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
