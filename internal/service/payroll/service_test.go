package payroll

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-os/office-backend/internal/domain/payroll"
	"github.com/nexus-os/office-backend/internal/pkg/kv"
	"github.com/nexus-os/office-backend/internal/pkg/store"
	"github.com/nexus-os/office-backend/internal/repository/kvstore"
)

func newService() payroll.PayrollService {
	return NewPayrollService(kvstore.NewPayrollRepository(store.New(kv.NewMemory())))
}

func TestListByUser_Summary(t *testing.T) {
	summary, err := newService().ListByUser(context.Background(), "u2")
	require.NoError(t, err)

	assert.Len(t, summary.Records, 3)
	assert.True(t, summary.TotalPaid.Equal(decimal.NewFromInt(10800)))
	assert.True(t, summary.TotalPending.Equal(decimal.NewFromInt(5600)))
	assert.True(t, summary.LastPaidAmount.Equal(decimal.NewFromInt(5400)))
	assert.Equal(t, 2, summary.PaidCount)
	assert.Equal(t, 1, summary.PendingCount)
}

func TestList_Summary(t *testing.T) {
	summary, err := newService().List(context.Background())
	require.NoError(t, err)

	assert.Len(t, summary.Records, 6)
	assert.True(t, summary.TotalPending.Equal(decimal.NewFromInt(21700)))
	assert.Equal(t, 4, summary.PendingCount)
}

func TestListByUser_NoRecords(t *testing.T) {
	summary, err := newService().ListByUser(context.Background(), "u7")
	require.NoError(t, err)

	assert.Empty(t, summary.Records)
	assert.True(t, summary.TotalPaid.IsZero())

	out, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"total_paid":"0"`)
}
