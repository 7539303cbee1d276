// Package logrelay carries timestamped, leveled log entries from process
// runners to the presentation layer.
//
// A Relay is an unbounded FIFO guarded by a mutex. Any number of goroutines
// may Push; Push never blocks and stamps the entry with the wall-clock time
// of the call. One consumer takes entries either by polling DrainAll, which
// never blocks, or by calling Wait, which blocks until something is pending
// or the context ends. Entries pushed while nobody is listening stay queued
// until the next drain.
//
//	relay := logrelay.NewRelay()
//	go func() { relay.Push(logrelay.Success, "page 1 done") }()
//	entries, err := relay.Wait(ctx)
//
// History is the consumer's rendered view of what it has drained. It is
// append-only apart from Clear, and can be saved to a UTF-8 text file.
package logrelay
