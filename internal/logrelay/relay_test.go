package logrelay

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestRelayDrainOrder(t *testing.T) {
	relay := NewRelay()

	const n = 50
	for i := 0; i < n; i++ {
		relay.Push(Level(i%4), fmt.Sprintf("line %d", i))
	}

	if got := relay.Len(); got != n {
		t.Fatalf("Len() = %d, want %d", got, n)
	}

	entries := relay.DrainAll()
	if len(entries) != n {
		t.Fatalf("DrainAll() returned %d entries, want %d", len(entries), n)
	}
	for i, e := range entries {
		if want := fmt.Sprintf("line %d", i); e.Message != want {
			t.Errorf("entries[%d].Message = %q, want %q", i, e.Message, want)
		}
		if e.Level != Level(i%4) {
			t.Errorf("entries[%d].Level = %v, want %v", i, e.Level, Level(i%4))
		}
	}

	if again := relay.DrainAll(); len(again) != 0 {
		t.Errorf("second DrainAll() returned %d entries, want 0", len(again))
	}
}

func TestRelayDrainEmpty(t *testing.T) {
	relay := NewRelay()

	done := make(chan []Entry, 1)
	go func() { done <- relay.DrainAll() }()

	select {
	case entries := <-done:
		if len(entries) != 0 {
			t.Errorf("DrainAll() on empty relay = %v", entries)
		}
	case <-time.After(time.Second):
		t.Fatal("DrainAll() blocked on an empty relay")
	}
}

func TestRelayTimestampsAtPush(t *testing.T) {
	clock := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	relay := NewRelay(WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))

	relay.Push(Info, "first")
	relay.Push(Info, "second")

	entries := relay.DrainAll()
	if !entries[0].Time.Equal(time.Date(2024, 5, 1, 9, 30, 1, 0, time.UTC)) {
		t.Errorf("first timestamp = %v", entries[0].Time)
	}
	if !entries[1].Time.After(entries[0].Time) {
		t.Errorf("timestamps not increasing: %v, %v", entries[0].Time, entries[1].Time)
	}
}

func TestRelayConcurrentProducers(t *testing.T) {
	relay := NewRelay()

	const producers, perProducer = 8, 200
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				relay.Pushf(Success, "%d:%d", p, i)
			}
		}(p)
	}

	var got []Entry
	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	for {
		got = append(got, relay.DrainAll()...)
		select {
		case <-finished:
			got = append(got, relay.DrainAll()...)
			if len(got) != producers*perProducer {
				t.Fatalf("received %d entries, want %d", len(got), producers*perProducer)
			}
			checkPerProducerOrder(t, got, producers)
			return
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func checkPerProducerOrder(t *testing.T, entries []Entry, producers int) {
	t.Helper()
	next := make([]int, producers)
	for _, e := range entries {
		var p, i int
		if _, err := fmt.Sscanf(e.Message, "%d:%d", &p, &i); err != nil {
			t.Fatalf("bad message %q: %v", e.Message, err)
		}
		if i != next[p] {
			t.Fatalf("producer %d delivered %d before %d", p, i, next[p])
		}
		next[p]++
	}
}

func TestRelayWait(t *testing.T) {
	t.Run("returns pending entries immediately", func(t *testing.T) {
		relay := NewRelay()
		relay.Push(Info, "idle notice")

		entries, err := relay.Wait(context.Background())
		if err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
		if len(entries) != 1 || entries[0].Message != "idle notice" {
			t.Errorf("Wait() = %v", entries)
		}
	})

	t.Run("wakes on push", func(t *testing.T) {
		relay := NewRelay()
		result := make(chan []Entry, 1)
		go func() {
			entries, _ := relay.Wait(context.Background())
			result <- entries
		}()

		time.Sleep(20 * time.Millisecond)
		relay.Push(Success, "late")

		select {
		case entries := <-result:
			if len(entries) == 0 || entries[0].Message != "late" {
				t.Errorf("Wait() = %v", entries)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Wait() did not wake after Push")
		}
	})

	t.Run("honors cancellation", func(t *testing.T) {
		relay := NewRelay()
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		entries, err := relay.Wait(ctx)
		if err != context.DeadlineExceeded {
			t.Errorf("Wait() error = %v, want DeadlineExceeded", err)
		}
		if entries != nil {
			t.Errorf("Wait() entries = %v, want nil", entries)
		}
	})

	t.Run("stale signal does not return empty", func(t *testing.T) {
		relay := NewRelay()
		relay.Push(Info, "a")
		relay.DrainAll()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		entries, err := relay.Wait(ctx)
		if err == nil || len(entries) != 0 {
			t.Errorf("Wait() = %v, %v; want timeout with no entries", entries, err)
		}
	})
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Info, "info"},
		{Warning, "warning"},
		{Error, "error"},
		{Success, "success"},
		{Level(9), "Level(9)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}
