package tui

import (
	"sync"

	"github.com/muurk/ocrfront/internal/session"
)

// compiledFeed holds the latest recompilation published by the session
// until the model picks it up. Older results are overwritten.
type compiledFeed struct {
	mu          sync.Mutex
	pending     *session.Compiled
	unsubscribe func()
}

func subscribeCompiled(sess *session.Session) *compiledFeed {
	f := &compiledFeed{}
	f.unsubscribe = sess.Subscribe(func(c session.Compiled) {
		f.mu.Lock()
		f.pending = &c
		f.mu.Unlock()
	})
	return f
}

// take returns the pending recompilation, if any, and clears it.
func (f *compiledFeed) take() (session.Compiled, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending == nil {
		return session.Compiled{}, false
	}
	c := *f.pending
	f.pending = nil
	return c, true
}
