package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

type PayrollRepository interface {
	List(ctx context.Context) ([]Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}

// Summary totals a list of records. LastPaidAmount is the amount of the
// record with the latest DatePaid.
type Summary struct {
	Records        []Record        `json:"records"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalPending   decimal.Decimal `json:"total_processing"`
	PaidCount      int             `json:"paid_count"`
	PendingCount   int             `json:"processing_count"`
	LastPaidAmount decimal.Decimal `json:"last_paid_amount"`
}

type PayrollService interface {
	List(ctx context.Context) (Summary, error)
	ListByUser(ctx context.Context, userID string) (Summary, error)
}
