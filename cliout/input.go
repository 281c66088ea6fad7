package cliout

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/gousaiyang/colorlabels/logutil"
	"golang.org/x/term"
)

var log = logutil.NewLogger("cliout")

// Question prints a question label and blocks until a line is read.
func (c *Console) Question(msg string, o Override) (string, error) {
	return c.prompt(KindQuestion, msg, o)
}

// Input prints an input label and blocks until a line is read.
func (c *Console) Input(msg string, o Override) (string, error) {
	return c.prompt(KindInput, msg, o)
}

// Password prints a password label and reads a line without echo when the
// input is a terminal.
func (c *Console) Password(msg string, o Override) (string, error) {
	p, err := c.Resolve(KindPassword, o)
	if err != nil {
		return "", err
	}
	if err := c.Render(p, msg, RenderOptions{}); err != nil {
		return "", err
	}

	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		// the terminal swallowed the user's Enter
		if werr := c.write("\n"); werr != nil {
			log.Debug("failed to end password line", "error", werr)
		}
		return string(secret), err
	}
	return c.readLine()
}

// prompt renders the label with the color left open so the echoed answer
// shares it, then resets the color once the read returns.
func (c *Console) prompt(kind LabelKind, msg string, o Override) (string, error) {
	p, err := c.Resolve(kind, o)
	if err != nil {
		return "", err
	}
	if err := c.Render(p, msg, RenderOptions{KeepColor: true}); err != nil {
		return "", err
	}
	if c.ColorEnabled() {
		defer func() {
			_ = c.write(Reset)
		}()
	}
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	line, err := c.lineReader().ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
