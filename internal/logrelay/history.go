package logrelay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ClearedMessage is pushed after History.Clear.
const ClearedMessage = "Log cleared"

// History is the consumer's rendered view of drained entries.
type History struct {
	mu      sync.Mutex
	entries []Entry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Append adds entries in order.
func (h *History) Append(entries ...Entry) {
	h.mu.Lock()
	h.entries = append(h.entries, entries...)
	h.mu.Unlock()
}

// Entries returns a copy of the history.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Entry(nil), h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Text renders every entry with Format, one per line.
func (h *History) Text() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var b strings.Builder
	for _, e := range h.entries {
		b.WriteString(Format(e))
		b.WriteByte('\n')
	}
	return b.String()
}

// Clear empties the history and pushes an info entry confirming it into
// relay, so the confirmation arrives through the normal drain path.
// A nil relay only empties the history.
func (h *History) Clear(relay *Relay) {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()

	if relay != nil {
		relay.Push(Info, ClearedMessage)
	}
}

// Save writes Text() to path as UTF-8. The file is written to a temporary
// sibling first and renamed into place.
func (h *History) Save(path string) error {
	return WriteFileAtomic(path, []byte(h.Text()))
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it over path.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary log file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write log file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write log file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set log file permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save log file: %w", err)
	}
	return nil
}
