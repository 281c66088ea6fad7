package progress

import (
	"math"
	"strings"

	"github.com/gousaiyang/colorlabels/cliout"
)

// spinGlyphs is the cycle drawn by ModeSpin.
var spinGlyphs = []string{"-", "\\", "|", "/"}

// frame is one animation tick: the presentation to draw with, the text
// following the message, and whether the previous frame must be blanked
// before drawing.
type frame struct {
	pres   cliout.Presentation
	suffix string
	blank  bool
}

// animator produces the frames of an indeterminate mode. It is only used by
// the loop goroutine of one session.
type animator interface {
	next(p cliout.Presentation) frame
}

type spinner struct {
	position SpinPosition
	i        int
}

func (s *spinner) next(p cliout.Presentation) frame {
	glyph := spinGlyphs[s.i%len(spinGlyphs)]
	s.i++
	if s.position == SpinAtMark {
		p.Mark = glyph
		return frame{pres: p}
	}
	return frame{pres: p, suffix: glyph}
}

type expander struct {
	char  string
	width int
	count int
}

func (e *expander) next(p cliout.Presentation) frame {
	wrapped := e.count == e.width
	e.count = e.count%e.width + 1
	return frame{
		pres:   p,
		suffix: strings.Repeat(e.char, e.count),
		blank:  wrapped,
	}
}

type mover struct {
	buf     []rune
	char    rune
	reflect bool
	forward bool
}

func newMover(c MoveConfig) *mover {
	buf := make([]rune, c.Width)
	for i := range buf {
		if i < c.Num {
			buf[i] = c.Char
		} else {
			buf[i] = ' '
		}
	}
	return &mover{
		buf:     buf,
		char:    c.Char,
		reflect: c.Style == MoveReflect,
		forward: true,
	}
}

func (m *mover) next(p cliout.Presentation) frame {
	f := frame{pres: p, suffix: "[" + string(m.buf) + "]"}
	m.advance()
	return f
}

// advance rotates the track by one cell. Forward moves the last cell to the
// front; backward moves the first cell to the end. A reflecting track turns
// around once the block touches either edge.
func (m *mover) advance() {
	n := len(m.buf)
	if m.forward {
		last := m.buf[n-1]
		copy(m.buf[1:], m.buf[:n-1])
		m.buf[0] = last
	} else {
		first := m.buf[0]
		copy(m.buf, m.buf[1:])
		m.buf[n-1] = first
	}
	if m.reflect && (m.buf[0] == m.char || m.buf[n-1] == m.char) {
		m.forward = !m.forward
	}
}

// bar renders the bracketed determinate bar for percent in [0, 1]. Half
// cells round to even.
func (c DeterminateConfig) bar(percent float64) string {
	if c.Width == 0 {
		return ""
	}
	done := int(math.RoundToEven(float64(c.Width) * percent))
	if done > c.Width {
		done = c.Width
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(strings.Repeat(string(c.CharDone), done))
	if done < c.Width {
		b.WriteRune(c.CharHead)
		b.WriteString(strings.Repeat(string(c.CharUndone), c.Width-done-1))
	}
	b.WriteString("]")
	return b.String()
}
