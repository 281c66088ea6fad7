package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gousaiyang/colorlabels/cliout"
	"github.com/gousaiyang/colorlabels/logutil"
	"github.com/gousaiyang/colorlabels/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app is the state shared by every subcommand.
type app struct {
	console *cliout.Console
	flags   presentationFlags
	// sleep waits between demo steps; tests replace it.
	sleep func(ctx context.Context, d time.Duration) error
	// interruptGrace bounds how long an interrupted command may take to
	// finish its cleanup before the interrupt is reported.
	interruptGrace time.Duration
}

func newApp(c *cliout.Console) *app {
	return &app{
		console:        c,
		sleep:          sleepContext,
		interruptGrace: 500 * time.Millisecond,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func newRootCmd(a *app, info *version.Info) *cobra.Command {
	root := &cobra.Command{
		Use:           "colorlabels",
		Short:         "Colorized console labels and progress indicators",
		Long:          "colorlabels prints semantically tagged console labels and animated progress indicators.\nRun without a subcommand for the interactive demo.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.flags.apply(a.console, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.interruptible(cmd.Context(), a.menu)
		},
	}
	a.flags.register(root.PersistentFlags())

	root.AddCommand(
		newOverviewCmd(a),
		newTestsCmd(a),
		newLoginCmd(a),
		newColorsCmd(a),
		newProgressCmd(a),
		version.NewCommand(info, nil, func() *cliout.Console { return a.console }),
	)
	return root
}

// presentationFlags are the global flags that customize label presentation.
type presentationFlags struct {
	colorSpan  int
	noHeader   bool
	noColor    bool
	forceColor bool
	config     string
	marks      map[string]string
	colors     map[string]string
	logLevel   string
	debug      bool
}

func (f *presentationFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.colorSpan, "color-span", int(cliout.DefaultColorSpan), "How much of each label is colored: 0 none, 1 mark, 2 header, 3 line")
	fs.BoolVar(&f.noHeader, "no-header", false, "Hide the [mark] header")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable color output")
	fs.BoolVar(&f.forceColor, "force-color", false, "Enable color output even when stdout is not a terminal")
	fs.StringVar(&f.config, "config", "", "YAML file with presentation settings")
	fs.StringToStringVar(&f.marks, "mark", nil, "Mark per label kind, e.g. error=X,success=v")
	fs.StringToStringVar(&f.colors, "color", nil, "Color per label kind, e.g. info=bright-blue")
	fs.StringVar(&f.logLevel, "log-level", "", "Diagnostic log level on stderr: debug, info, warn or error (default info, debug when "+logutil.EnvDebug+"=true)")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging on stderr (same as --log-level debug)")
}

// apply configures c from the config file first, then from explicit flags.
func (f *presentationFlags) apply(c *cliout.Console, fs *pflag.FlagSet) error {
	switch {
	case f.debug:
		logutil.SetLevel(logutil.LevelDebug)
	case f.logLevel != "":
		if !knownLogLevel(f.logLevel) {
			logutil.Warn("unknown log level, using info", "value", f.logLevel)
		}
		logutil.SetLevel(logutil.ParseLevel(f.logLevel))
	}
	if f.noColor && f.forceColor {
		return errors.New("--no-color and --force-color are mutually exclusive")
	}

	if f.config != "" {
		opts, err := cliout.LoadOptionsFile(f.config)
		if err != nil {
			return err
		}
		if err := c.Configure(opts); err != nil {
			return err
		}
		logutil.Info("loaded presentation config", "path", f.config)
	}

	values := make(map[string]any)
	if fs.Changed("color-span") {
		values["colorSpan"] = f.colorSpan
	}
	if f.noHeader {
		values["showHeader"] = false
	}
	for kind, mark := range f.marks {
		values[kind+"Mark"] = mark
	}
	for kind, name := range f.colors {
		values[kind+"Color"] = name
	}
	if len(values) > 0 {
		if err := c.ConfigureMap(values); err != nil {
			return err
		}
	}

	switch {
	case f.noColor:
		c.SetColorEnabled(false)
	case f.forceColor:
		c.SetColorEnabled(true)
	}
	return nil
}

func knownLogLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// interruptible runs fn until it returns or ctx is done. An interrupt is
// reported with a warning label instead of an error. After an interrupt fn
// gets up to interruptGrace to stop its progress sessions, so their final
// writes land before the warning; a blocked prompt cannot observe ctx and is
// abandoned.
func (a *app) interruptible(ctx context.Context, fn func(context.Context) error) error {
	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
		grace := time.NewTimer(a.interruptGrace)
		defer grace.Stop()
		select {
		case <-done:
		case <-grace.C:
			logutil.Debug("interrupted command still running, likely a blocked prompt", "grace", a.interruptGrace)
		}
	}

	if errors.Is(err, context.Canceled) {
		a.console.Newline()
		a.console.Warning("Ctrl-C received, quitting.")
		return nil
	}
	return err
}
