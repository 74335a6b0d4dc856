// Package transcript persists committed lines to a plain text file, one
// line per commit, so a later session can restore them.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// Store appends lines to a transcript file.
type Store struct {
	path string
}

// Open returns a Store for path. A leading "~/" is expanded to the home
// directory. The file is created lazily on the first Record.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("transcript path is empty")
	}
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: expanded}, nil
}

// Path returns the resolved file path.
func (s *Store) Path() string {
	return s.path
}

// Record appends line to the transcript.
func (s *Store) Record(line string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create transcript dir: %w", err)
	}

	// Exclusive lock so concurrent sessions don't interleave partial lines
	fileLock := flock.New(s.path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock transcript: %w", err)
	}
	defer fileLock.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open transcript: %w", err)
	}

	// Lines never contain newlines when typed, but pasted text could.
	line = strings.ReplaceAll(line, "\n", " ")
	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("write transcript: %w", err)
	}
	return f.Close()
}

// Load returns every recorded line in order. A missing file yields no lines.
func (s *Store) Load() ([]string, error) {
	// Shared lock - blocks while a writer holds the exclusive lock
	fileLock := flock.New(s.path + ".lock")
	if err := fileLock.RLock(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock transcript: %w", err)
	}
	defer fileLock.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	// No line length limit: Record accepts lines of any size.
	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read transcript: %w", err)
		}
	}
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
