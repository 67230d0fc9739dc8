package attendance

import (
	"time"

	"github.com/nexus-os/office-backend/internal/pkg/clock"
)

type Status string

const (
	StatusPresent      Status = "PRESENT"
	StatusLate         Status = "LATE"
	StatusHalfDay      Status = "HALF_DAY"
	StatusAbsent       Status = "ABSENT"
	StatusPending      Status = "PENDING"
	StatusWorkFromHome Status = "WORK_FROM_HOME"
)

const (
	// Check-in at or after this hour is late
	LateCutoffHour = 9
	// Check-out strictly before this hour is a half day
	HalfDayCutoffHour = 16
)

// Record is one user's attendance for one calendar day. At most one record
// exists per (UserID, Date).
type Record struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Date         string     `json:"date"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Status       Status     `json:"status"`
	IsRemote     bool       `json:"is_remote"`
}

func (r Record) CheckedOut() bool {
	return r.CheckOutTime != nil
}

// CheckInStatus is the status of a check-in made at the given instant.
func CheckInStatus(at time.Time, isRemote bool) Status {
	switch {
	case isRemote:
		return StatusWorkFromHome
	case !at.Before(clock.At(at, LateCutoffHour, 0)):
		return StatusLate
	default:
		return StatusPresent
	}
}

// CheckOutStatus is the status after checking out at the given instant.
func CheckOutStatus(current Status, at time.Time) Status {
	if at.Before(clock.At(at, HalfDayCutoffHour, 0)) {
		return StatusHalfDay
	}
	return current
}
