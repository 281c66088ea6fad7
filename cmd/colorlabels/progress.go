package main

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gousaiyang/colorlabels/cliout"
	"github.com/gousaiyang/colorlabels/progress"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type progressOptions struct {
	mode     string
	duration time.Duration
	interval time.Duration
	char     string
	num      int
	width    int
	style    string
	position string
	steps    int
	erase    bool
	cleanup  bool
}

func newProgressCmd(a *app) *cobra.Command {
	var opts progressOptions
	cmd := &cobra.Command{
		Use:   "progress [message]",
		Short: "Show a progress indicator for a fixed duration",
		Example: `  colorlabels progress --mode spin "Waiting for server"
  colorlabels progress --mode move --style reflect --width 20
  colorlabels progress --mode determinate --steps 50 --duration 5s`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := "Working, please wait..."
			if len(args) == 1 {
				msg = args[0]
			}
			mode, err := opts.modeConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return a.interruptible(cmd.Context(), func(ctx context.Context) error {
				return a.runProgress(ctx, msg, mode, opts)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.mode, "mode", "spin", "Progress mode: static, spin, expand, move or determinate")
	f.DurationVar(&opts.duration, "duration", 3*time.Second, "How long the indicator runs")
	f.DurationVar(&opts.interval, "interval", 0, "Frame interval (mode default when unset)")
	f.StringVar(&opts.char, "char", "", "Animation character for expand and move")
	f.IntVar(&opts.num, "num", 0, "Block length for move")
	f.IntVar(&opts.width, "width", 0, "Track width for expand and move, bar width for determinate")
	f.StringVar(&opts.style, "style", "", "Move style: loop or reflect")
	f.StringVar(&opts.position, "position", "", "Spin position: mark or tail")
	f.IntVar(&opts.steps, "steps", 20, "Number of updates in determinate mode")
	f.BoolVar(&opts.erase, "erase", false, "Blank the line when done instead of leaving a final label")
	f.BoolVar(&opts.cleanup, "cleanup", false, "Blank the line when a determinate bar is done")
	return cmd
}

// modeConfig builds the mode configuration from the defaults of the chosen
// mode and the flags the user set.
func (o progressOptions) modeConfig(fs *pflag.FlagSet) (progress.ModeConfig, error) {
	mode, err := progress.ParseMode(o.mode)
	if err != nil {
		return nil, err
	}

	var char rune
	if o.char != "" {
		if utf8.RuneCountInString(o.char) != 1 {
			return nil, fmt.Errorf("%w: --char should be one character, got %q", cliout.ErrInvalidArgument, o.char)
		}
		char, _ = utf8.DecodeRuneInString(o.char)
	}

	var cfg progress.ModeConfig
	switch mode {
	case progress.ModeStatic:
		cfg = progress.Static{}
	case progress.ModeSpin:
		c := progress.DefaultSpin()
		if o.position != "" {
			c.Position = progress.SpinPosition(o.position)
		}
		if o.interval > 0 {
			c.Interval = o.interval
		}
		c.Erase = o.erase
		cfg = c
	case progress.ModeExpand:
		c := progress.DefaultExpand()
		if char != 0 {
			c.Char = char
		}
		if fs.Changed("width") {
			c.Width = o.width
		}
		if o.interval > 0 {
			c.Interval = o.interval
		}
		c.Erase = o.erase
		cfg = c
	case progress.ModeMove:
		c := progress.DefaultMove()
		if char != 0 {
			c.Char = char
		}
		if fs.Changed("num") {
			c.Num = o.num
		}
		if fs.Changed("width") {
			c.Width = o.width
		}
		if o.style != "" {
			c.Style = progress.MoveStyle(o.style)
		}
		if o.interval > 0 {
			c.Interval = o.interval
		}
		c.Erase = o.erase
		cfg = c
	default:
		c := progress.DefaultDeterminate()
		if fs.Changed("width") {
			c.Width = o.width
		}
		c.Erase = o.erase
		c.Cleanup = o.cleanup
		cfg = c
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if mode == progress.ModeDeterminate && o.steps < 1 {
		return nil, fmt.Errorf("%w: --steps should be at least 1, got %d", cliout.ErrInvalidArgument, o.steps)
	}
	return cfg, nil
}

func (a *app) runProgress(ctx context.Context, msg string, mode progress.ModeConfig, o progressOptions) error {
	return progress.Do(ctx, a.console, msg, mode, cliout.Override{}, func(s *progress.Session) error {
		switch s.Mode() {
		case progress.ModeStatic:
			return nil
		case progress.ModeDeterminate:
			step := o.duration / time.Duration(o.steps)
			for i := 1; i <= o.steps; i++ {
				if err := a.sleep(ctx, step); err != nil {
					return err
				}
				if err := s.Update(float64(i)/float64(o.steps), fmt.Sprintf(" %d/%d", i, o.steps)); err != nil {
					return err
				}
			}
			return nil
		default:
			return a.sleep(ctx, o.duration)
		}
	})
}
