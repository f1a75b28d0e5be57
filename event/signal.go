// Package event provides a minimal synchronous publish/subscribe primitive.
//
// A [Signal] keeps an ordered registry of callbacks. Subscribing returns a
// [Handle] that is later used to unsubscribe; removing an unknown or
// already removed handle is a no-op, so subscribe/unsubscribe pairs stay
// symmetric and [Signal.Len] always reflects the live subscriptions.
package event

import "sync"

// Handle identifies one subscription. The zero Handle is never issued.
type Handle uint64

type subscriber struct {
	handle Handle
	fn     func()
}

// Signal is a list of zero-argument callbacks fired synchronously.
// The zero value is ready to use. A Signal must not be copied after first use.
type Signal struct {
	mu   sync.Mutex
	last Handle
	subs []subscriber
}

// Subscribe registers fn and returns its handle. A nil fn is ignored and
// yields the zero Handle.
func (s *Signal) Subscribe(fn func()) Handle {
	if fn == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	s.subs = append(s.subs, subscriber{handle: s.last, fn: fn})
	return s.last
}

// Unsubscribe removes the subscription identified by h and reports whether
// it was present.
func (s *Signal) Unsubscribe(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub.handle == h {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Fire invokes every current subscriber once, in subscription order, and
// returns after the last callback finished. Callbacks may subscribe or
// unsubscribe; such changes take effect on the next Fire.
func (s *Signal) Fire() {
	s.mu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}

// Len returns the number of live subscriptions.
func (s *Signal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
