package gateway

import (
	"context"
	"testing"
	"time"

	"mf-receipts/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoSource(latency time.Duration) *StaticSource {
	centers := []domain.Option{{Label: "Center 1", Value: "center1"}}
	return NewStaticSource(latency, DemoBranches(centers), DemoReceipts())
}

func TestStaticSource_ResolveBranches(t *testing.T) {
	source := demoSource(0)

	branches, err := source.ResolveBranches(context.Background(), "center1")
	require.NoError(t, err)
	assert.Equal(t, "branch1", branches.CashierBranch.Value)
	assert.Equal(t, "branchA", branches.LoanBranch.Value)

	_, err = source.ResolveBranches(context.Background(), "center99")
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}

func TestStaticSource_ResolveBranches_CanceledContext(t *testing.T) {
	source := demoSource(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.ResolveBranches(ctx, "center1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStaticSource_SearchReceipts(t *testing.T) {
	source := demoSource(0)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "match by name",
			query:   "saman",
			wantIDs: []string{"CK000000012212"},
		},
		{
			name:    "match by id fragment",
			query:   "01221",
			wantIDs: []string{"CK000000012212", "CK000000012213", "CK000000012214"},
		},
		{
			name:    "no match",
			query:   "nobody",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := source.SearchReceipts(context.Background(), domain.Query{SearchQuery: tt.query})
			require.NoError(t, err)
			ids := make([]string, 0, len(records))
			for _, rec := range records {
				ids = append(ids, rec.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestStaticSource_Persistence(t *testing.T) {
	source := demoSource(0)
	ctx := context.Background()

	require.NoError(t, source.CommitPayment(ctx, "CK000000012213", decimal.NewFromInt(20000)))
	amount, ok := source.Payment("CK000000012213")
	require.True(t, ok)
	assert.Equal(t, "20000", amount.String())

	require.NoError(t, source.SaveTotal(ctx, decimal.NewFromInt(600000)))
	assert.Equal(t, "600000", source.SavedTotal().String())
}

func TestDemoReceipts_DueFollowsRentalMinusPaid(t *testing.T) {
	for _, rec := range DemoReceipts() {
		want := rec.RentalAmount
		if rec.PayAmount != nil {
			want = domain.Due(rec.RentalAmount, *rec.PayAmount)
		}
		assert.Equal(t, want.String(), rec.DueAmount.String(), "record %s", rec.ID)
	}
}
