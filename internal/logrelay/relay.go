package logrelay

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Relay is an ordered, concurrency-safe hand-off of log entries from
// producers to a single consumer.
type Relay struct {
	mu      sync.Mutex
	pending []Entry
	notify  chan struct{}
	now     func() time.Time
}

// Option configures a Relay.
type Option func(*Relay)

// WithClock replaces the clock used to timestamp pushed entries.
func WithClock(now func() time.Time) Option {
	return func(r *Relay) {
		r.now = now
	}
}

// NewRelay creates an empty relay.
func NewRelay(opts ...Option) *Relay {
	r := &Relay{
		notify: make(chan struct{}, 1),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Push appends a message at level, timestamped now.
func (r *Relay) Push(level Level, message string) {
	r.mu.Lock()
	r.pending = append(r.pending, Entry{
		Time:    r.now(),
		Level:   level,
		Message: message,
	})
	r.mu.Unlock()
	r.signal()
}

// Pushf is Push with fmt.Sprintf formatting.
func (r *Relay) Pushf(level Level, format string, args ...any) {
	r.Push(level, fmt.Sprintf(format, args...))
}

// DrainAll removes and returns every pending entry in push order.
// It returns nil immediately when nothing is pending.
func (r *Relay) DrainAll() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.pending) == 0 {
		return nil
	}
	out := r.pending
	r.pending = nil
	return out
}

// Wait blocks until at least one entry is pending, then drains and returns
// all of them. It returns ctx.Err() if ctx ends first.
func (r *Relay) Wait(ctx context.Context) ([]Entry, error) {
	for {
		if entries := r.DrainAll(); len(entries) > 0 {
			return entries, nil
		}
		select {
		case <-r.notify:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Len returns the number of pending entries.
func (r *Relay) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// signal wakes a waiting consumer. The channel holds at most one token, so
// repeated pushes between drains coalesce.
func (r *Relay) signal() {
	select {
	case r.notify <- struct{}{}:
	default:
	}
}
