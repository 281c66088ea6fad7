package cliout

import (
	"fmt"
)

// Print renders a label of the given kind followed by a line break.
func (c *Console) Print(kind LabelKind, msg string, o Override) error {
	p, err := c.Resolve(kind, o)
	if err != nil {
		return err
	}
	return c.Render(p, msg, RenderOptions{Newline: true})
}

func (c *Console) printf(kind LabelKind, format string, args ...interface{}) {
	_ = c.Print(kind, fmt.Sprintf(format, args...), Override{})
}

// Section prints a section label.
func (c *Console) Section(format string, args ...interface{}) {
	c.printf(KindSection, format, args...)
}

// Item prints an item label.
func (c *Console) Item(format string, args ...interface{}) {
	c.printf(KindItem, format, args...)
}

// Success prints a success label.
func (c *Console) Success(format string, args ...interface{}) {
	c.printf(KindSuccess, format, args...)
}

// Warning prints a warning label.
func (c *Console) Warning(format string, args ...interface{}) {
	c.printf(KindWarning, format, args...)
}

// Error prints an error label.
func (c *Console) Error(format string, args ...interface{}) {
	c.printf(KindError, format, args...)
}

// Info prints an info label.
func (c *Console) Info(format string, args ...interface{}) {
	c.printf(KindInfo, format, args...)
}

// Progress prints a static progress label. Animated progress lives in the
// progress package.
func (c *Console) Progress(format string, args ...interface{}) {
	c.printf(KindProgress, format, args...)
}

// Plain prints a plain label.
func (c *Console) Plain(format string, args ...interface{}) {
	c.printf(KindPlain, format, args...)
}

// Newline prints an empty line.
func (c *Console) Newline() {
	_ = c.write("\n")
}

// Package-level helpers operating on Default().

// Configure applies opts to the default Console.
func Configure(opts Options) error {
	return Default().Configure(opts)
}

// ConfigureMap applies keyed settings to the default Console.
func ConfigureMap(values map[string]any) error {
	return Default().ConfigureMap(values)
}

// NoColor disables color output on the default Console.
func NoColor() {
	Default().SetColorEnabled(false)
}

// ForceColor enables color output on the default Console regardless of
// terminal detection.
func ForceColor() {
	Default().SetColorEnabled(true)
}

// Section prints a section label
func Section(format string, args ...interface{}) {
	Default().Section(format, args...)
}

// Item prints an item label
func Item(format string, args ...interface{}) {
	Default().Item(format, args...)
}

// Success prints a success label
func Success(format string, args ...interface{}) {
	Default().Success(format, args...)
}

// Warning prints a warning label
func Warning(format string, args ...interface{}) {
	Default().Warning(format, args...)
}

// Error prints an error label
func Error(format string, args ...interface{}) {
	Default().Error(format, args...)
}

// Info prints an info label
func Info(format string, args ...interface{}) {
	Default().Info(format, args...)
}

// Progress prints a static progress label
func Progress(format string, args ...interface{}) {
	Default().Progress(format, args...)
}

// Plain prints a plain label
func Plain(format string, args ...interface{}) {
	Default().Plain(format, args...)
}

// Newline prints a blank line
func Newline() {
	Default().Newline()
}

// Question prompts on the default Console.
func Question(msg string) (string, error) {
	return Default().Question(msg, Override{})
}

// Input prompts on the default Console.
func Input(msg string) (string, error) {
	return Default().Input(msg, Override{})
}

// Password prompts on the default Console without echoing the answer.
func Password(msg string) (string, error) {
	return Default().Password(msg, Override{})
}
