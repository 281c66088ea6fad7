// Package progress draws in-place progress labels on a cliout.Console.
//
// A Session renders one of five modes:
//
//   - Static: a single progress label, like cliout.Progress
//   - Spin: a "- \ | /" glyph cycling in the mark or after the message
//   - Expand: a row of characters growing after the message
//   - Move: a block sliding inside brackets, looping or reflecting
//   - Determinate: a bar redrawn by each Session.Update call
//
// Spin, expand and move are animated by one background goroutine per
// session. Determinate renders synchronously on the caller's goroutine.
//
// # Basic Usage
//
//	err := progress.Do(ctx, nil, "Downloading", progress.DefaultSpin(), cliout.Override{},
//	    func(s *progress.Session) error {
//	        return download(ctx)
//	    })
//
//	bar := progress.DefaultDeterminate()
//	bar.Width = 20
//	s, err := progress.Start(ctx, nil, "Copying ", bar, cliout.Override{})
//	if err != nil {
//	    return err
//	}
//	defer s.Stop()
//	for i, f := range files {
//	    _ = s.Update(float64(i+1)/float64(len(files)), " "+f)
//	}
//
// # Shutdown
//
// When the context passed to Start is done, the animation loop exits
// without writing anything further. Stop is still required to release the
// session; it is safe to call more than once.
//
// Only one session or prompt should write to a Console at a time. Labels
// printed through other channels while an animated session runs will
// interleave with its frames.
//
// # Metrics
//
// Session starts, rendered frames, active sessions and loop exits are
// exported as Prometheus metrics on the default registry.
package progress
