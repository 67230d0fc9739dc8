package changefeed

import (
	"context"
	"sync"
)

// Local is an in-process bus. Several stores over the same kv.Memory can
// share one Local to behave like several tabs of one browser.
type Local struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[int]func(Change)
}

func NewLocal() *Local {
	return &Local{listeners: make(map[int]func(Change))}
}

// Publish calls every registered listener synchronously.
func (l *Local) Publish(ctx context.Context, c Change) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.RLock()
	fns := make([]func(Change), 0, len(l.listeners))
	for _, fn := range l.listeners {
		fns = append(fns, fn)
	}
	l.mu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
	return nil
}

func (l *Local) Listen(ctx context.Context, fn func(Change)) error {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	l.mu.Unlock()

	<-ctx.Done()

	l.mu.Lock()
	delete(l.listeners, id)
	l.mu.Unlock()
	return nil
}

// Listeners reports how many Listen calls are currently active.
func (l *Local) Listeners() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.listeners)
}

func (l *Local) Close() error { return nil }
