// Package latency imitates the round-trip delay of a remote backend so that
// callers exercise their loading states.
package latency

import (
	"context"
	"time"
)

// Simulated durations at scale 1.
const (
	CheckIn            = 500 * time.Millisecond
	CheckOut           = 500 * time.Millisecond
	CreateLeave        = 400 * time.Millisecond
	UpdateLeaveStatus  = 300 * time.Millisecond
	CreateAnnouncement = 400 * time.Millisecond
	CreateTask         = 200 * time.Millisecond
	MarkRead           = 100 * time.Millisecond
	MarkAllRead        = 200 * time.Millisecond
	Login              = 600 * time.Millisecond
)

// Simulator scales every delay. A zero Simulator never sleeps.
type Simulator struct {
	Scale float64
}

func New(scale float64) Simulator {
	if scale < 0 {
		scale = 0
	}
	return Simulator{Scale: scale}
}

// Wait sleeps for d times the scale, or until ctx is done.
func (s Simulator) Wait(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * s.Scale)
	if scaled <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(scaled)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
