package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 12, 2, hour, minute, 0, 0, time.UTC)
}

func TestCheckInStatus(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		isRemote bool
		want     Status
	}{
		{"early", at(8, 0), false, StatusPresent},
		{"one minute before cutoff", at(8, 59), false, StatusPresent},
		{"exactly at cutoff", at(9, 0), false, StatusLate},
		{"late", at(10, 30), false, StatusLate},
		{"remote early", at(7, 0), true, StatusWorkFromHome},
		{"remote late", at(11, 0), true, StatusWorkFromHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckInStatus(tt.at, tt.isRemote))
		})
	}
}

func TestCheckOutStatus(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		at      time.Time
		want    Status
	}{
		{"early leave demotes present", StatusPresent, at(15, 59), StatusHalfDay},
		{"early leave demotes wfh", StatusWorkFromHome, at(12, 0), StatusHalfDay},
		{"at cutoff keeps status", StatusLate, at(16, 0), StatusLate},
		{"after cutoff keeps status", StatusPresent, at(18, 0), StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckOutStatus(tt.current, tt.at))
		})
	}
}
