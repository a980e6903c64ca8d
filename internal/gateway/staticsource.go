package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"mf-receipts/internal/domain"

	"github.com/shopspring/decimal"
)

// StaticSource is an in-memory DataSource standing in for the real
// backend. Every call waits the configured latency (cancelable through
// the context), so the engine's token and busy discipline is exercised
// under realistic overlap.
type StaticSource struct {
	latency time.Duration

	branches map[string]domain.Branches
	receipts []domain.ReceiptRecord

	mu         sync.Mutex
	payments   map[string]decimal.Decimal
	savedTotal decimal.Decimal
}

// NewStaticSource creates a source with the given simulated latency,
// branch derivations and receipt fixtures.
func NewStaticSource(latency time.Duration, branches map[string]domain.Branches, receipts []domain.ReceiptRecord) *StaticSource {
	return &StaticSource{
		latency:  latency,
		branches: branches,
		receipts: receipts,
		payments: make(map[string]decimal.Decimal),
	}
}

func (s *StaticSource) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ResolveBranches derives the cashier/loan branches for a center.
func (s *StaticSource) ResolveBranches(ctx context.Context, centerValue string) (domain.Branches, error) {
	if err := s.wait(ctx); err != nil {
		return domain.Branches{}, fmt.Errorf("resolve branches for %s: %w", centerValue, err)
	}
	branches, ok := s.branches[centerValue]
	if !ok {
		return domain.Branches{}, fmt.Errorf("center %s: %w", centerValue, domain.ErrLookupFailed)
	}
	return branches, nil
}

// SearchReceipts returns the fixture records whose id or name contains
// the query text, case-insensitively.
func (s *StaticSource) SearchReceipts(ctx context.Context, query domain.Query) ([]domain.ReceiptRecord, error) {
	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("search receipts: %w", err)
	}
	needle := strings.ToLower(strings.TrimSpace(query.SearchQuery))
	matched := make([]domain.ReceiptRecord, 0)
	for _, rec := range s.receipts {
		if strings.Contains(strings.ToLower(rec.ID), needle) ||
			strings.Contains(strings.ToLower(rec.Name), needle) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// CommitPayment records a payment against a receipt id.
func (s *StaticSource) CommitPayment(ctx context.Context, receiptID string, amount decimal.Decimal) error {
	if err := s.wait(ctx); err != nil {
		return fmt.Errorf("commit payment %s: %w", receiptID, err)
	}
	s.mu.Lock()
	s.payments[receiptID] = amount
	s.mu.Unlock()
	return nil
}

// SaveTotal stores the aggregate total.
func (s *StaticSource) SaveTotal(ctx context.Context, amount decimal.Decimal) error {
	if err := s.wait(ctx); err != nil {
		return fmt.Errorf("save total: %w", err)
	}
	s.mu.Lock()
	s.savedTotal = amount
	s.mu.Unlock()
	return nil
}

// SavedTotal returns the last total stored through SaveTotal.
func (s *StaticSource) SavedTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savedTotal
}

// Payment returns the committed payment for a receipt id, if any.
func (s *StaticSource) Payment(receiptID string) (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	amount, ok := s.payments[receiptID]
	return amount, ok
}

// DemoBranches mirrors the branch derivation of the pilot deployment:
// every center resolves to the first cashier and loan branch.
func DemoBranches(centers []domain.Option) map[string]domain.Branches {
	branches := make(map[string]domain.Branches, len(centers))
	for _, center := range centers {
		branches[center.Value] = domain.Branches{
			CashierBranch: domain.Option{Label: "Branch 1", Value: "branch1"},
			LoanBranch:    domain.Option{Label: "Branch A", Value: "branchA"},
		}
	}
	return branches
}

// DemoReceipts returns the pilot fixture ledger. Due amounts follow the
// rental minus paid rule.
func DemoReceipts() []domain.ReceiptRecord {
	pay := decimal.NewFromInt(20000)
	return []domain.ReceiptRecord{
		{
			ID:           "CK000000012212",
			Name:         "Saman Perera",
			RentalAmount: decimal.NewFromInt(100000),
			PayAmount:    &pay,
			DueAmount:    decimal.NewFromInt(80000),
		},
		{
			ID:           "CK000000012213",
			Name:         "Kamal Silva",
			RentalAmount: decimal.NewFromInt(100000),
			DueAmount:    decimal.NewFromInt(100000),
		},
		{
			ID:           "CK000000012214",
			Name:         "Nimal Fernando",
			RentalAmount: decimal.NewFromInt(100000),
			PayAmount:    &pay,
			DueAmount:    decimal.NewFromInt(80000),
		},
	}
}
