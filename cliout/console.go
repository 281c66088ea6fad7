package cliout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// EnvColumns overrides the detected terminal width when set.
const EnvColumns = "COLUMNS"

// Console is a terminal presentation context: the output stream labels are
// written to, the input stream prompts read from, and the custom
// presentation settings consulted by every label.
//
// Settings reads and writes are safe for concurrent use. Writes to the
// output stream are not serialized; only one progress session or prompt
// should be active on a Console at a time.
type Console struct {
	out io.Writer
	in  io.Reader

	readerOnce sync.Once
	reader     *bufio.Reader

	mu        sync.RWMutex
	custom    settings
	colored   bool
	termWidth int
}

// Option configures a Console created by New.
type Option func(*Console)

// WithInput sets the stream prompts read from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(c *Console) {
		c.in = r
	}
}

// WithColor enables or disables color output. Colors are enabled by default.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.colored = enabled
	}
}

// WithTerminalWidth sets the terminal width used to clip progress frames.
// Zero means unknown, in which case frames are never clipped.
func WithTerminalWidth(width int) Option {
	return func(c *Console) {
		if width < 0 {
			width = 0
		}
		c.termWidth = width
	}
}

// New creates a Console writing to out.
func New(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:     out,
		in:      os.Stdin,
		colored: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultMu      sync.Mutex
	defaultConsole *Console
)

// Default returns the process-wide Console bound to stdout, creating it on
// first use. Creation enables ANSI handling on legacy Windows consoles and
// disables color when NO_COLOR is set or stdout is not a terminal.
func Default() *Console {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultConsole == nil {
		defaultConsole = newStdoutConsole()
	}
	return defaultConsole
}

// SetDefault replaces the process-wide Console and returns the previous one,
// which may be nil if Default was never called.
func SetDefault(c *Console) *Console {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultConsole
	defaultConsole = c
	return prev
}

func newStdoutConsole() *Console {
	return New(colorable.NewColorableStdout(),
		WithColor(!color.NoColor),
		WithTerminalWidth(detectTerminalWidth(os.Stdout)))
}

// detectTerminalWidth returns the width of f if it is a terminal, or 0.
func detectTerminalWidth(f *os.File) int {
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0
	}

	// COLUMNS is the most reliable source when the shell exports it
	if colsStr := os.Getenv(EnvColumns); colsStr != "" {
		var width int
		if n, err := fmt.Sscanf(colsStr, "%d", &width); err == nil && n == 1 && width > 0 {
			return width
		}
	}

	if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
		return w
	}
	return 0
}

// ColorEnabled reports whether labels are rendered with color codes.
func (c *Console) ColorEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.colored
}

// SetColorEnabled turns color output on or off.
func (c *Console) SetColorEnabled(enabled bool) {
	c.mu.Lock()
	c.colored = enabled
	c.mu.Unlock()
}

// TerminalWidth returns the known terminal width, or 0 when unknown.
func (c *Console) TerminalWidth() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.termWidth
}

// Writer returns the output stream of c.
func (c *Console) Writer() io.Writer {
	return c.out
}

func (c *Console) write(s string) error {
	_, err := io.WriteString(c.out, s)
	return err
}

func (c *Console) lineReader() *bufio.Reader {
	c.readerOnce.Do(func() {
		c.reader = bufio.NewReader(c.in)
	})
	return c.reader
}
