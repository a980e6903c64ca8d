package usecase_test

import (
	"testing"

	"mf-receipts/internal/domain"
	"mf-receipts/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureRecords() []domain.ReceiptRecord {
	return []domain.ReceiptRecord{
		{
			ID:           "CK000000012212",
			Name:         "Saman Perera",
			RentalAmount: decimal.NewFromInt(100000),
			DueAmount:    decimal.NewFromInt(100000),
		},
		{
			ID:           "CK000000012213",
			Name:         "Kamal Silva",
			RentalAmount: decimal.NewFromInt(100000),
			DueAmount:    decimal.NewFromInt(100000),
		},
	}
}

func TestReceiptLedger_ApplyPayment(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		amount  decimal.Decimal
		wantDue string
		wantErr error
	}{
		{
			name:    "partial payment leaves the remainder due",
			id:      "CK000000012212",
			amount:  decimal.NewFromInt(20000),
			wantDue: "80000",
		},
		{
			name:    "overpayment floors due at zero",
			id:      "CK000000012212",
			amount:  decimal.NewFromInt(120000),
			wantDue: "0",
		},
		{
			name:    "exact payment clears the due amount",
			id:      "CK000000012213",
			amount:  decimal.NewFromInt(100000),
			wantDue: "0",
		},
		{
			name:    "zero amount rejected",
			id:      "CK000000012212",
			amount:  decimal.Zero,
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative amount rejected",
			id:      "CK000000012212",
			amount:  decimal.NewFromInt(-500),
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "unknown id is a wiring fault",
			id:      "CK999999999999",
			amount:  decimal.NewFromInt(20000),
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := usecase.NewReceiptLedger()
			ledger.ReplaceAll(fixtureRecords())

			record, err := ledger.ApplyPayment(tt.id, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, record.PayAmount)
			assert.Equal(t, tt.amount.String(), record.PayAmount.String())
			assert.Equal(t, tt.wantDue, record.DueAmount.String())
		})
	}
}

func TestReceiptLedger_ApplyPayment_IdempotentShape(t *testing.T) {
	ledger := usecase.NewReceiptLedger()
	ledger.ReplaceAll(fixtureRecords())

	first, err := ledger.ApplyPayment("CK000000012212", decimal.NewFromInt(20000))
	require.NoError(t, err)
	second, err := ledger.ApplyPayment("CK000000012212", decimal.NewFromInt(20000))
	require.NoError(t, err)

	assert.Equal(t, first.DueAmount.String(), second.DueAmount.String())
	assert.Equal(t, "80000", second.DueAmount.String())
}

func TestReceiptLedger_ApplyPayment_OtherRecordsUntouched(t *testing.T) {
	ledger := usecase.NewReceiptLedger()
	ledger.ReplaceAll(fixtureRecords())

	_, err := ledger.ApplyPayment("CK000000012212", decimal.NewFromInt(20000))
	require.NoError(t, err)

	other, ok := ledger.Get("CK000000012213")
	require.True(t, ok)
	assert.Nil(t, other.PayAmount)
	assert.Equal(t, "100000", other.DueAmount.String())
}

func TestReceiptLedger_ReplaceAll_TrustsDueOnLoadAndDiscardsPrior(t *testing.T) {
	ledger := usecase.NewReceiptLedger()
	ledger.ReplaceAll(fixtureRecords())
	_, err := ledger.ApplyPayment("CK000000012212", decimal.NewFromInt(20000))
	require.NoError(t, err)

	// A new search replaces the collection; nothing is merged.
	ledger.ReplaceAll([]domain.ReceiptRecord{
		{
			ID:           "CK000000012214",
			Name:         "Nimal Fernando",
			RentalAmount: decimal.NewFromInt(50000),
			DueAmount:    decimal.NewFromInt(12345),
		},
	})

	assert.Equal(t, 1, ledger.Len())
	_, ok := ledger.Get("CK000000012212")
	assert.False(t, ok)

	loaded, ok := ledger.Get("CK000000012214")
	require.True(t, ok)
	assert.Equal(t, "12345", loaded.DueAmount.String())
}

func TestReceiptLedger_OutstandingTotal(t *testing.T) {
	ledger := usecase.NewReceiptLedger()
	ledger.ReplaceAll(fixtureRecords())

	_, err := ledger.ApplyPayment("CK000000012212", decimal.NewFromInt(20000))
	require.NoError(t, err)

	assert.Equal(t, "180000", ledger.OutstandingTotal().String())
}
