package store

import "sync"

type subscriber struct {
	id int
	fn func()
}

// Notifier runs every subscriber, in registration order, each time Notify is
// called. There is no payload: subscribers re-read whatever they display.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn and returns a function that removes exactly this
// registration. Calling it twice is harmless.
func (n *Notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs = append(n.subs, subscriber{id: id, fn: fn})
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify calls a snapshot of the subscribers synchronously.
func (n *Notifier) Notify() {
	n.mu.Lock()
	subs := make([]subscriber, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, s := range subs {
		s.fn()
	}
}

// Len reports the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
