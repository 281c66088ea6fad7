package progress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gousaiyang/colorlabels/cliout"
	"github.com/gousaiyang/colorlabels/logutil"
	"github.com/mattn/go-runewidth"
)

// ErrInvalidState indicates an operation the session's mode does not support,
// such as Update on an indeterminate session.
var ErrInvalidState = errors.New("invalid state")

var (
	sessionSeq atomic.Uint64
	log        = logutil.NewLogger("progress")
)

// Session is one progress indicator. It is owned by the caller that started
// it; for animated modes a background goroutine draws frames until Stop.
type Session struct {
	console *cliout.Console
	ctx     context.Context
	mode    Mode
	pres    cliout.Presentation
	message string
	erase   bool
	log     *logutil.ComponentLogger

	running  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}

	// lastWidth is only touched by the loop goroutine.
	lastWidth int

	// Determinate state, guarded by mu.
	mu            sync.Mutex
	bar           DeterminateConfig
	cleanup       bool
	lastTextWidth int
	occupied      int
}

// Start creates a progress label on c (cliout.Default() when nil) with a
// snapshot of msg. Static renders once and returns an already stopped
// session. Spin, expand and move start a loop that draws one frame per
// interval until Stop is called or ctx is done; after ctx is done nothing
// more is written. Determinate draws a 0% bar and waits for Update.
//
// The mode configuration and override are validated before anything is
// written or started.
func Start(ctx context.Context, c *cliout.Console, msg string, mode ModeConfig, o cliout.Override) (*Session, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c == nil {
		c = cliout.Default()
	}
	if mode == nil {
		mode = Static{}
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	pres, err := c.Resolve(cliout.KindProgress, o)
	if err != nil {
		return nil, err
	}

	id := sessionSeq.Add(1)
	s := &Session{
		console: c,
		ctx:     ctx,
		mode:    mode.Mode(),
		pres:    pres,
		message: msg,
		log:     log.WithFields("session", id, "mode", mode.Mode().String()),
	}
	if err := mode.start(s); err != nil {
		return nil, err
	}
	sessionsStarted.WithLabelValues(s.mode.String()).Inc()
	return s, nil
}

// Do runs fn with a new session and stops the session exactly once when fn
// returns or panics.
func Do(ctx context.Context, c *cliout.Console, msg string, mode ModeConfig, o cliout.Override, fn func(*Session) error) error {
	s, err := Start(ctx, c, msg, mode, o)
	if err != nil {
		return err
	}
	defer s.Stop()
	return fn(s)
}

// Mode returns the rendering mode of s.
func (s *Session) Mode() Mode {
	return s.mode
}

// Message returns the message snapshot taken when s was started.
func (s *Session) Message() string {
	return s.message
}

// Running reports whether s has been started and not yet stopped.
func (s *Session) Running() bool {
	return s.running.Load()
}

func (Static) start(s *Session) error {
	return s.console.Render(s.pres, s.message, cliout.RenderOptions{Newline: true})
}

func (c SpinConfig) start(s *Session) error {
	s.launch(&spinner{position: c.Position}, c.Interval, c.Erase)
	return nil
}

func (c ExpandConfig) start(s *Session) error {
	s.launch(&expander{char: string(c.Char), width: c.Width}, c.Interval, c.Erase)
	return nil
}

func (c MoveConfig) start(s *Session) error {
	s.launch(newMover(c), c.Interval, c.Erase)
	return nil
}

func (c DeterminateConfig) start(s *Session) error {
	s.bar = c
	s.erase = c.Erase
	s.cleanup = c.Cleanup
	s.running.Store(true)
	if err := s.Update(0, ""); err != nil {
		s.running.Store(false)
		return err
	}
	activeSessions.Inc()
	s.log.Debug("session started")
	return nil
}

func (s *Session) launch(a animator, interval time.Duration, erase bool) {
	s.erase = erase
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	s.running.Store(true)
	activeSessions.Inc()
	s.log.Debug("session started", "interval", interval)
	go s.animate(a, interval)
}

// animate draws frames until the session stops or the context is done. On
// stop it draws the final label (or blanks the line); on shutdown or a
// failed write it returns without writing anything else.
func (s *Session) animate(a animator, interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for s.running.Load() {
		if s.ctx.Err() != nil {
			s.exitLoop(exitShutdown, s.ctx.Err())
			return
		}
		if err := s.drawFrame(a.next(s.pres)); err != nil {
			s.exitLoop(exitWriteError, err)
			return
		}

		select {
		case <-s.ctx.Done():
			s.exitLoop(exitShutdown, s.ctx.Err())
			return
		case <-s.stopCh:
		case <-ticker.C:
		}
	}

	var err error
	if s.erase {
		err = s.console.Erase(s.lastWidth)
	} else {
		err = s.console.Render(s.pres, s.message, cliout.RenderOptions{Newline: true})
	}
	s.exitLoop(exitStopped, err)
}

func (s *Session) exitLoop(reason string, err error) {
	loopExits.WithLabelValues(reason).Inc()
	if err != nil {
		s.log.Debug("animation loop exited", "reason", reason, "error", err)
		return
	}
	s.log.Debug("animation loop exited", "reason", reason)
}

func (s *Session) drawFrame(f frame) error {
	if f.blank && s.lastWidth > 0 {
		if err := s.console.Erase(s.lastWidth); err != nil {
			return err
		}
	}

	msg := s.console.FitMessage(f.pres, s.message, runewidth.StringWidth(f.suffix))
	text := msg + f.suffix
	if err := s.console.Render(f.pres, text, cliout.RenderOptions{}); err != nil {
		return err
	}
	s.lastWidth = cliout.Width(f.pres, text)
	framesRendered.WithLabelValues(s.mode.String()).Inc()
	return nil
}

// Update redraws a determinate session at percent (0 to 1) followed by text.
// When text is narrower than the previous one, the old text is blanked
// first so no stale characters remain.
func (s *Session) Update(percent float64, text string) error {
	if s.mode != ModeDeterminate {
		return fmt.Errorf("%w: cannot update progress in %s mode", ErrInvalidState, s.mode)
	}
	if math.IsNaN(percent) || percent < 0 || percent > 1 {
		return fmt.Errorf("%w: 'percent' should be in range [0, 1], got %v", cliout.ErrInvalidArgument, percent)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Load() {
		return fmt.Errorf("%w: session already stopped", ErrInvalidState)
	}

	line := s.message + s.bar.bar(percent)
	textWidth := runewidth.StringWidth(text)
	if textWidth < s.lastTextWidth {
		blank := line + strings.Repeat(" ", s.lastTextWidth)
		if err := s.console.Render(s.pres, blank, cliout.RenderOptions{}); err != nil {
			return err
		}
	}
	if err := s.console.Render(s.pres, line+text, cliout.RenderOptions{}); err != nil {
		return err
	}

	s.lastTextWidth = textWidth
	s.occupied = max(s.occupied, cliout.Width(s.pres, line+text))
	framesRendered.WithLabelValues(s.mode.String()).Inc()
	return nil
}

// Stop ends the session. For animated modes it waits for the loop to draw
// its final frame and exit. A determinate session is finalized with a line
// break, or blanked when Erase or Cleanup is set. Calls after the first are
// no-ops.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		if !s.running.Load() {
			return
		}

		switch {
		case s.mode.animated():
			s.running.Store(false)
			close(s.stopCh)
			<-s.done
		case s.mode == ModeDeterminate:
			s.mu.Lock()
			s.running.Store(false)
			var err error
			if s.erase || s.cleanup {
				err = s.console.Erase(s.occupied)
			} else {
				_, err = io.WriteString(s.console.Writer(), "\n")
			}
			s.mu.Unlock()
			if err != nil {
				s.log.Debug("failed to finish progress line", "error", err)
			}
		}

		activeSessions.Dec()
		s.log.Debug("session stopped")
	})
}
