package cliout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderOptions controls the line terminator and trailing reset of a render.
type RenderOptions struct {
	// Newline appends a line break. Frames that will be overwritten, or that
	// are followed by input, are written without one.
	Newline bool
	// KeepColor omits the trailing reset of a fully colored line so that
	// input echoed after the label keeps the label color. The caller must
	// write Reset once the input has been read.
	KeepColor bool
}

// Format composes a label line. The result always starts with ClearLineSeq
// so that it replaces whatever is on the current terminal line.
func Format(p Presentation, msg string, ro RenderOptions) string {
	var b strings.Builder
	col := string(p.Color)

	b.WriteString(ClearLineSeq)
	if p.ShowHeader {
		switch p.ColorSpan {
		case SpanNone:
			b.WriteString("[" + p.Mark + "] " + msg)
		case SpanMark:
			b.WriteString("[" + col + p.Mark + Reset + "] " + msg)
		case SpanHeader:
			b.WriteString(col + "[" + p.Mark + "]" + Reset + " " + msg)
		default:
			b.WriteString(col + "[" + p.Mark + "] " + msg)
			if !ro.KeepColor {
				b.WriteString(Reset)
			}
		}
	} else {
		if p.ColorSpan == SpanLine {
			b.WriteString(col + msg)
			if !ro.KeepColor {
				b.WriteString(Reset)
			}
		} else {
			b.WriteString(msg)
		}
	}

	if ro.Newline {
		b.WriteString("\n")
	}
	return b.String()
}

// Render writes a label line. When color is disabled on c the line is
// rendered without any color codes.
func (c *Console) Render(p Presentation, msg string, ro RenderOptions) error {
	if !c.ColorEnabled() {
		p.ColorSpan = SpanNone
		if !p.ShowHeader {
			ro.KeepColor = false
		}
	}
	return c.write(Format(p, msg, ro))
}

// Width returns the number of terminal cells a label occupies, counting the
// "[mark] " header when it is shown. Wide characters count as two cells.
func Width(p Presentation, msg string) int {
	w := runewidth.StringWidth(msg)
	if p.ShowHeader {
		w += runewidth.StringWidth(p.Mark) + 3
	}
	return w
}

// Erase blanks width cells of the current line, returns the cursor to
// column zero and clears the rest of the line.
func (c *Console) Erase(width int) error {
	if width <= 0 {
		return c.ClearLine()
	}
	return c.write("\r" + strings.Repeat(" ", width) + ClearLineSeq)
}

// ClearLine erases the current line and returns the cursor to column zero.
func (c *Console) ClearLine() error {
	return c.write(ClearLineSeq)
}

// FitMessage shortens msg so that a frame built from it, plus suffixWidth
// trailing cells, fits on one terminal row. It returns msg unchanged when
// the terminal width is unknown.
func (c *Console) FitMessage(p Presentation, msg string, suffixWidth int) string {
	width := c.TerminalWidth()
	if width <= 0 {
		return msg
	}
	// The last column is left free: a character printed there defers the
	// wrap on some terminals and breaks the carriage return that follows.
	avail := width - 1 - suffixWidth - Width(p, "")
	if avail <= 0 {
		return ""
	}
	if runewidth.StringWidth(msg) <= avail {
		return msg
	}
	if avail <= 3 {
		return runewidth.Truncate(msg, avail, "")
	}
	return runewidth.Truncate(msg, avail, "...")
}
