package gate

import (
	"fmt"
	"os"
	"sync"
)

// Sink receives one diagnostic line per gate invocation. The file-backed
// sink is append-only by contract: never truncated, never rotated, no
// structure beyond one plain-text line per check.
type Sink interface {
	Append(line string) error
}

// FileSink appends lines to a fixed well-known path, creating the file on
// first use.
type FileSink struct {
	Path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{Path: path}
}

func (s *FileSink) Append(line string) error {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open gate log %s: %w", s.Path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("append gate log %s: %w", s.Path, err)
	}
	return nil
}

// MemorySink collects lines in memory. Used by tests and dry runs instead
// of touching the filesystem.
type MemorySink struct {
	mu    sync.Mutex
	lines []string
}

func (s *MemorySink) Append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	return nil
}

func (s *MemorySink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}
