package payroll

import (
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPaid       Status = "PAID"
	StatusProcessing Status = "PROCESSING"
)

// Record is one month's pay for one user. Amount is serialised as a quoted
// decimal string.
type Record struct {
	ID       string          `json:"id"`
	UserID   string          `json:"user_id"`
	Month    string          `json:"month"`
	Amount   decimal.Decimal `json:"amount"`
	Status   Status          `json:"status"`
	DatePaid *string         `json:"date_paid,omitempty"`
}
