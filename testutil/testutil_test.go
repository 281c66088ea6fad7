package testutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureOutput(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("test output")
			return nil
		})
		assert.Contains(t, output, "test output")
	})

	t.Run("restores stdout on error", func(t *testing.T) {
		orig := os.Stdout
		output := CaptureOutput(t, func() error {
			fmt.Println("output before error")
			return errors.New("test error")
		})
		assert.Contains(t, output, "output before error")
		assert.Equal(t, orig, os.Stdout)
	})
}

func TestSafeBufferConcurrentWrites(t *testing.T) {
	var buf SafeBuffer
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = buf.Write([]byte("ab"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, buf.Len())
	assert.Equal(t, strings.Repeat("ab", 10), buf.String())

	buf.Reset()
	assert.Empty(t, buf.String())
}

func TestFailingWriter(t *testing.T) {
	w := &FailingWriter{Limit: 1}

	n, err := w.Write([]byte("first"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = w.Write([]byte("second"))
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.Equal(t, "first", w.String())
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "\r[+] ok", StripANSI("\r\x1b[K\x1b[92m[+] ok\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "config.yaml", "colorSpan: 1\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "colorSpan: 1\n", string(data))
}
