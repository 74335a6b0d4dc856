package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	enabled bool
	out     io.Writer
	closer  io.Closer
	mu      sync.Mutex
	now     = time.Now
)

// Enable turns on debug logging to the file at path, truncating it.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create debug log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}

	EnableWriter(f)
	mu.Lock()
	closer = f
	mu.Unlock()

	Log("debug logging enabled (%s)", path)
	return nil
}

// EnableWriter sends debug output to w.
func EnableWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	out = w
	enabled = true
}

// Close stops debug logging and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	out = nil
	enabled = false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || out == nil {
		return
	}

	timestamp := now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := now()
	Log("%s started", name)

	return func() {
		Log("%s completed in %v", name, now().Sub(start))
	}
}
