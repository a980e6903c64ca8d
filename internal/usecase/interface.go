package usecase

import (
	"context"

	"mf-receipts/internal/domain"

	"github.com/shopspring/decimal"
)

// DataSource defines the remote boundary the engine depends on. The
// usecase layer depends on this interface, not on a concrete transport.
//
//go:generate mockgen -destination=mocks/mock_datasource.go -source=interface.go DataSource
type DataSource interface {
	ResolveBranches(ctx context.Context, centerValue string) (domain.Branches, error)
	SearchReceipts(ctx context.Context, query domain.Query) ([]domain.ReceiptRecord, error)
	CommitPayment(ctx context.Context, receiptID string, amount decimal.Decimal) error
	SaveTotal(ctx context.Context, amount decimal.Decimal) error
}
