// Package testutil provides common testing utilities for colorlabels packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Collecting output written from a background goroutine (SafeBuffer)
//   - Simulating a closed or broken output stream (FailingWriter)
//   - Comparing rendered output without escape sequences (StripANSI)
//   - Temporary directories and files with automatic cleanup (TempDir, WriteFile)
//
// Example usage:
//
//	func TestSpinner(t *testing.T) {
//	    var out testutil.SafeBuffer
//	    c := cliout.New(&out)
//	    s, err := progress.Start(context.Background(), c, "Working", progress.DefaultSpin(), cliout.Override{})
//	    require.NoError(t, err)
//	    s.Stop()
//	    assert.Contains(t, testutil.StripANSI(out.String()), "[=] Working")
//	}
package testutil
