package cliout

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, WithInput(strings.NewReader("yes\r\n")))

	answer, err := c.Question("Continue? ", Override{})
	require.NoError(t, err)
	assert.Equal(t, "yes", answer)
	// color stays open while the answer is echoed, then is reset
	assert.Equal(t, ClearLineSeq+string(BrightCyan)+"[?] Continue? "+Reset, buf.String())
}

func TestInputWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, WithColor(false), WithInput(strings.NewReader("alice\nbob\n")))

	first, err := c.Input("Name: ", Override{})
	require.NoError(t, err)
	second, err := c.Input("Name: ", Override{Mark: Ptr("$")})
	require.NoError(t, err)

	assert.Equal(t, "alice", first)
	assert.Equal(t, "bob", second)
	assert.Equal(t, ClearLineSeq+"[>] Name: "+ClearLineSeq+"[$] Name: ", buf.String())
}

func TestInputLastLineWithoutNewline(t *testing.T) {
	c := New(&bytes.Buffer{}, WithInput(strings.NewReader("tail")))

	answer, err := c.Input("> ", Override{})
	require.NoError(t, err)
	assert.Equal(t, "tail", answer)

	_, err = c.Input("> ", Override{})
	assert.True(t, errors.Is(err, io.EOF))
}

func TestPasswordFromPipe(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, WithColor(false), WithInput(strings.NewReader("s3cret\n")))

	secret, err := c.Password("Password: ", Override{})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", secret)
	assert.Equal(t, ClearLineSeq+"[>] Password: ", buf.String())
}

func TestPromptInvalidOverride(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, WithInput(strings.NewReader("x\n")))

	_, err := c.Question("q", Override{ColorSpan: Ptr(ColorSpan(9))})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = c.Password("p", Override{Mark: Ptr("")})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Empty(t, buf.String())
}
