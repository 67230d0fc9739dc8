// Package changefeed carries "key changed" signals between store instances
// that share one backend.
package changefeed

import (
	"context"
	"encoding/json"
	"fmt"
)

// Change names a namespaced key that was written and the store that wrote it.
type Change struct {
	Key    string `json:"key"`
	Origin string `json:"origin"`
}

func (c Change) encode() ([]byte, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal change: %w", err)
	}
	return payload, nil
}

func decode(payload []byte) (Change, error) {
	var c Change
	if err := json.Unmarshal(payload, &c); err != nil {
		return Change{}, fmt.Errorf("unmarshal change: %w", err)
	}
	return c, nil
}

// Feed publishes changes and delivers the changes of every publisher,
// including this one, to Listen callbacks. Filtering echoes is the caller's
// job.
type Feed interface {
	Publish(ctx context.Context, c Change) error

	// Listen blocks, calling fn for each change, until ctx is done or the
	// feed fails. It returns nil on ctx cancellation.
	Listen(ctx context.Context, fn func(Change)) error

	Close() error
}

// Noop is the single-process feed: nothing is published and Listen just
// waits for ctx.
type Noop struct{}

func (Noop) Publish(context.Context, Change) error { return nil }

func (Noop) Listen(ctx context.Context, _ func(Change)) error {
	<-ctx.Done()
	return nil
}

func (Noop) Close() error { return nil }
