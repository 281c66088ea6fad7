package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gousaiyang/colorlabels/cliout"
	"github.com/gousaiyang/colorlabels/logutil"
	"github.com/gousaiyang/colorlabels/testutil"
	"github.com/gousaiyang/colorlabels/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func runCLI(t *testing.T, ctx context.Context, input string, args ...string) (string, error) {
	t.Helper()

	buf := &testutil.SafeBuffer{}
	c := cliout.New(buf, cliout.WithColor(false), cliout.WithInput(strings.NewReader(input)))
	a := newApp(c)
	a.sleep = noSleep

	cmd := newRootCmd(a, version.New("colorlabels"))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestOverview(t *testing.T) {
	out, err := runCLI(t, context.Background(), "", "overview")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, cliout.ClearLineSeq+"[#] Overview of Labels\n"))
	for _, line := range []string{
		"[+] Good job! All test cases passed!",
		"[!] Warning! Security update delayed!",
		"[-] Error! Failed to write file!",
		"[i] Server listening on port 8888.",
		"[=] Downloading package, please wait...",
		"[*] Nothing interesting.",
		"[?] A new version is present, would you like to update? (Y/N)",
	} {
		assert.Contains(t, out, line+"\n")
	}
}

func TestMenu(t *testing.T) {
	out, err := runCLI(t, context.Background(), "9\n1\n\n2\n\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, "[#] ColorLabels Demo")
	assert.Equal(t, 4, strings.Count(out, "[>] Input your option: "))
	assert.Contains(t, out, "[#] Overview of Labels")
	assert.Contains(t, out, "[-] Test case 4: Failed")
	assert.Contains(t, out, "[i] Pass rate: 75%")
	assert.True(t, strings.HasSuffix(out, "[*] Bye!\n"))
}

func TestMenuEndOfInput(t *testing.T) {
	out, err := runCLI(t, context.Background(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "[*] 4. Exit")
}

func TestLogin(t *testing.T) {
	out, err := runCLI(t, context.Background(), "\nalice\nsecret\nmaybe\nn\n", "login")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "[>] Username: "))
	assert.Contains(t, out, "[+] Successfully logged in as alice.\n")
	assert.Contains(t, out, "[=] Checking for update...\n")
	assert.Equal(t, 2, strings.Count(out, "[?] A new version is present"))
	assert.True(t, strings.HasSuffix(out, "[!] Update delayed!\n"))
	assert.NotContains(t, out, "secret")
}

func TestLoginUpdate(t *testing.T) {
	out, err := runCLI(t, context.Background(), "alice\nsecret\nY\n", "login")
	require.NoError(t, err)

	assert.Contains(t, out, "Downloading package [")
	assert.True(t, strings.HasSuffix(out, "[-] Failed to download package. SSL handshake error.\n"))
}

func TestPresentationFlags(t *testing.T) {
	out, err := runCLI(t, context.Background(), "", "overview", "--mark", "error=X,success=v")
	require.NoError(t, err)
	assert.Contains(t, out, "[X] Error! Failed to write file!")
	assert.Contains(t, out, "[v] Good job!")

	out, err = runCLI(t, context.Background(), "", "overview", "--no-header")
	require.NoError(t, err)
	assert.Contains(t, out, cliout.ClearLineSeq+"Good job! All test cases passed!\n")
	assert.NotContains(t, out, "[+]")
}

func TestPresentationFlagsRejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"span out of range", []string{"overview", "--color-span", "5"}},
		{"unknown kind", []string{"overview", "--mark", "debug=D"}},
		{"unknown color", []string{"overview", "--color", "info=orange"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, context.Background(), "", tt.args...)
			assert.True(t, errors.Is(err, cliout.ErrInvalidArgument), "got %v", err)
			assert.Empty(t, out)
		})
	}

	_, err := runCLI(t, context.Background(), "", "overview", "--no-color", "--force-color")
	assert.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	path := testutil.WriteFile(t, "labels.yaml", "successMark: v\nshowHeader: true\n")

	out, err := runCLI(t, context.Background(), "", "overview", "--config", path, "--mark", "info=I")
	require.NoError(t, err)
	assert.Contains(t, out, "[v] Good job!")
	assert.Contains(t, out, "[I] Server listening")

	_, err = runCLI(t, context.Background(), "", "overview", "--config", path+".missing")
	assert.Error(t, err)
}

func TestColors(t *testing.T) {
	out, err := runCLI(t, context.Background(), "", "colors")
	require.NoError(t, err)
	assert.Equal(t, len(cliout.ColorNames()), strings.Count(out, "\n"))
	assert.Contains(t, out, "[*] bright-cyan\n")
}

func TestProgressCommand(t *testing.T) {
	out, err := runCLI(t, context.Background(), "", "progress", "--mode", "static", "Loading")
	require.NoError(t, err)
	assert.Equal(t, cliout.ClearLineSeq+"[=] Loading\n", out)

	out, err = runCLI(t, context.Background(), "", "progress", "--mode", "determinate", "--width", "10", "--steps", "2", "Copy ")
	require.NoError(t, err)
	assert.Contains(t, out, "[=] Copy [=====>    ] 1/2")
	assert.True(t, strings.HasSuffix(out, "[=] Copy [==========] 2/2\n"))

	out, err = runCLI(t, context.Background(), "", "progress", "--mode", "spin", "--erase", "Waiting")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, cliout.ClearLineSeq))
	assert.NotContains(t, out, "\n")
}

func TestProgressCommandRejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"--mode", "bounce"}},
		{"num not below width", []string{"--mode", "move", "--num", "12"}},
		{"two characters", []string{"--mode", "expand", "--char", "ab"}},
		{"bad style", []string{"--mode", "move", "--style", "zigzag"}},
		{"zero steps", []string{"--mode", "determinate", "--steps", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, context.Background(), "", append([]string{"progress"}, tt.args...)...)
			assert.True(t, errors.Is(err, cliout.ErrInvalidArgument), "got %v", err)
			assert.Empty(t, out)
		})
	}
}

func TestInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := runCLI(t, ctx, "", "tests")
	require.NoError(t, err)
	assert.Contains(t, out, "[!] Ctrl-C received, quitting.\n")
	assert.NotContains(t, out, "Test Result")
}

func TestInterruptWaitsForCleanup(t *testing.T) {
	buf := &testutil.SafeBuffer{}
	a := newApp(cliout.New(buf, cliout.WithColor(false)))
	a.interruptGrace = 2 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	go func() {
		<-started
		cancel()
	}()

	err := a.interruptible(ctx, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		a.console.Plain("cleanup")
		return ctx.Err()
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Less(t, strings.Index(out, "[*] cleanup"), strings.Index(out, "[!] Ctrl-C received"))
	assert.True(t, strings.HasSuffix(out, "[!] Ctrl-C received, quitting.\n"), "got %q", out)
}

func TestInterruptAbandonsBlockedCommand(t *testing.T) {
	buf := &testutil.SafeBuffer{}
	a := newApp(cliout.New(buf, cliout.WithColor(false)))
	a.interruptGrace = 10 * time.Millisecond

	blocked := make(chan struct{})
	t.Cleanup(func() { close(blocked) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := a.interruptible(ctx, func(context.Context) error {
		<-blocked
		return nil
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), a.interruptGrace)
	assert.Contains(t, buf.String(), "[!] Ctrl-C received, quitting.\n")
}

func TestLogLevelFlag(t *testing.T) {
	var logs bytes.Buffer
	logutil.SetupLoggerWithWriter(&logs, false, false)
	t.Cleanup(func() { logutil.SetupLogger(false, false) })

	_, err := runCLI(t, context.Background(), "", "overview", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, logutil.LevelError, logutil.GetLevel())

	_, err = runCLI(t, context.Background(), "", "overview", "--log-level", "WARN")
	require.NoError(t, err)
	assert.Equal(t, logutil.LevelWarn, logutil.GetLevel())

	_, err = runCLI(t, context.Background(), "", "overview", "--log-level", "loud")
	require.NoError(t, err)
	assert.Equal(t, logutil.LevelInfo, logutil.GetLevel())
	assert.Contains(t, logs.String(), "unknown log level, using info")
	assert.Contains(t, logs.String(), "value=loud")

	_, err = runCLI(t, context.Background(), "", "overview", "--log-level", "error", "--debug")
	require.NoError(t, err)
	assert.Equal(t, logutil.LevelDebug, logutil.GetLevel())
}

func TestConfigFlagLogsPath(t *testing.T) {
	var logs bytes.Buffer
	logutil.SetupLoggerWithWriter(&logs, false, false)
	t.Cleanup(func() { logutil.SetupLogger(false, false) })

	path := testutil.WriteFile(t, "labels.yaml", "infoMark: I\n")
	_, err := runCLI(t, context.Background(), "", "overview", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "loaded presentation config")
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, context.Background(), "", "version", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0-dev\n", out)
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
