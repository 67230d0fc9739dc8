// Package clock decides what "now" and "today" mean for the office, in the
// office's time zone.
package clock

import (
	"sync"
	"time"
)

// DateLayout is the calendar-day format used for attendance and leave dates.
const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

// Real reads the wall clock in a fixed location.
type Real struct {
	Loc *time.Location
}

func (r Real) Now() time.Time {
	if r.Loc == nil {
		return time.Now()
	}
	return time.Now().In(r.Loc)
}

// Fixed always reports the same instant until Set is called.
type Fixed struct {
	mu sync.Mutex
	t  time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *Fixed) Set(t time.Time) {
	f.mu.Lock()
	f.t = t
	f.mu.Unlock()
}

// Today is the calendar day of c.Now().
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// At returns the instant hour:minute on the same calendar day as t, in t's
// location.
func At(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}
