package logrelay

import (
	"fmt"
	"time"
)

// Level classifies a log entry.
type Level int

const (
	Info Level = iota
	Warning
	Error
	Success
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Success:
		return "success"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Entry is one log line. Entries are never modified after they are pushed.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// TimeLayout is the timestamp format used when rendering entries.
const TimeLayout = "15:04:05"

// Timestamp returns the bracketed local time prefix, e.g. "[14:03:59]".
func (e Entry) Timestamp() string {
	return "[" + e.Time.Format(TimeLayout) + "]"
}

// Format renders e as "[HH:MM:SS] message".
func Format(e Entry) string {
	return e.Timestamp() + " " + e.Message
}
