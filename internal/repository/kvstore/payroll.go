package kvstore

import (
	"context"

	"github.com/nexus-os/office-backend/internal/domain/payroll"
	"github.com/nexus-os/office-backend/internal/fixtures"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type payrollRepository struct {
	store *store.Store
}

func NewPayrollRepository(s *store.Store) payroll.PayrollRepository {
	return &payrollRepository{store: s}
}

func (r *payrollRepository) List(ctx context.Context) ([]payroll.Record, error) {
	return store.Read(ctx, r.store, KeyPayroll, fixtures.DefaultPayroll())
}

func (r *payrollRepository) ListByUser(ctx context.Context, userID string) ([]payroll.Record, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []payroll.Record{}
	for _, rec := range all {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}
