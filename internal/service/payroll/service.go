package payroll

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nexus-os/office-backend/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo: payrollRepo,
	}
}

func (s *PayrollServiceImpl) List(ctx context.Context) (payroll.Summary, error) {
	records, err := s.payrollRepo.List(ctx)
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to list payroll: %w", err)
	}
	return summarize(records), nil
}

func (s *PayrollServiceImpl) ListByUser(ctx context.Context, userID string) (payroll.Summary, error) {
	records, err := s.payrollRepo.ListByUser(ctx, userID)
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to list payroll: %w", err)
	}
	return summarize(records), nil
}

func summarize(records []payroll.Record) payroll.Summary {
	summary := payroll.Summary{
		Records:        records,
		TotalPaid:      decimal.Zero,
		TotalPending:   decimal.Zero,
		LastPaidAmount: decimal.Zero,
	}

	lastPaidDate := ""
	for _, r := range records {
		switch r.Status {
		case payroll.StatusPaid:
			summary.TotalPaid = summary.TotalPaid.Add(r.Amount)
			summary.PaidCount++
			// dates are YYYY-MM-DD
			if r.DatePaid != nil && *r.DatePaid >= lastPaidDate {
				lastPaidDate = *r.DatePaid
				summary.LastPaidAmount = r.Amount
			}
		case payroll.StatusProcessing:
			summary.TotalPending = summary.TotalPending.Add(r.Amount)
			summary.PendingCount++
		}
	}
	return summary
}
