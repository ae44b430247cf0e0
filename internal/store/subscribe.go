package store

import "sync"

// Subscription receives snapshots from a Store. The channel holds at most
// one pending snapshot: a newer one replaces an unread older one, so a slow
// reader never blocks a mutation.
type Subscription struct {
	store *Store
	ch    chan Snapshot

	mu     sync.Mutex
	closed bool
}

// Subscribe registers a new subscriber. The current snapshot is queued
// immediately.
func (s *Store) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	sub := &Subscription{store: s, ch: make(chan Snapshot, 1)}
	sub.deliver(Snapshot{Version: s.version, Tasks: s.copyTasks()})
	s.subs[sub] = struct{}{}
	return sub
}

// C returns the channel snapshots arrive on. It is closed when the
// subscription or the store is closed.
func (sub *Subscription) C() <-chan Snapshot {
	return sub.ch
}

// Close detaches the subscription from its store
func (sub *Subscription) Close() {
	s := sub.store
	s.mu.Lock()
	if s.subs != nil {
		delete(s.subs, sub)
	}
	s.mu.Unlock()
	sub.close()
}

func (sub *Subscription) deliver(snap Snapshot) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	select {
	case <-sub.ch:
	default:
	}
	sub.ch <- snap
}

func (sub *Subscription) close() {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	sub.closed = true
	close(sub.ch)
}
