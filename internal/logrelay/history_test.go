package logrelay

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	e := Entry{
		Time:    time.Date(2024, 3, 9, 7, 5, 3, 0, time.Local),
		Level:   Success,
		Message: "Command completed",
	}
	if got, want := Format(e), "[07:05:03] Command completed"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestHistoryClear(t *testing.T) {
	relay := NewRelay()
	h := NewHistory()
	h.Append(Entry{Level: Info, Message: "a"}, Entry{Level: Error, Message: "b"})

	h.Clear(relay)

	if h.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", h.Len())
	}

	pending := relay.DrainAll()
	if len(pending) != 1 {
		t.Fatalf("Clear pushed %d entries, want 1", len(pending))
	}
	if pending[0].Level != Info || pending[0].Message != ClearedMessage {
		t.Errorf("Clear pushed %+v", pending[0])
	}

	h.Append(pending...)
	if h.Len() != 1 {
		t.Errorf("confirmation not appended: %d", h.Len())
	}
}

func TestHistoryEntriesIsCopy(t *testing.T) {
	h := NewHistory()
	h.Append(Entry{Message: "original"})

	entries := h.Entries()
	entries[0].Message = "changed"

	if h.Entries()[0].Message != "original" {
		t.Error("Entries() exposed internal storage")
	}
}

func TestHistorySave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.log")

	at := time.Date(2024, 3, 9, 10, 0, 0, 0, time.Local)
	h := NewHistory()
	h.Append(
		Entry{Time: at, Level: Success, Message: "Starting command: ocrmypdf"},
		Entry{Time: at.Add(time.Second), Level: Success, Message: "识别完成 ✓"},
		Entry{Time: at.Add(2 * time.Second), Level: Error, Message: "Command failed with exit code 2"},
	)

	if err := h.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	want := "[10:00:00] Starting command: ocrmypdf\n" +
		"[10:00:01] 识别完成 ✓\n" +
		"[10:00:02] Command failed with exit code 2\n"
	if string(data) != want {
		t.Errorf("saved log =\n%s\nwant\n%s", data, want)
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestHistorySaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("stale content that is longer\n"), 0600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory()
	h.Append(Entry{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), Message: "new"})
	if err := h.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "[00:00:00] new\n" {
		t.Errorf("saved log = %q", data)
	}
}

func TestHistorySaveMissingDir(t *testing.T) {
	h := NewHistory()
	err := h.Save(filepath.Join(t.TempDir(), "missing", "run.log"))
	if err == nil {
		t.Error("Save() into a missing directory should fail")
	}
}
