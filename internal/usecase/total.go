package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mf-receipts/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReconciliationTotal tracks the cashier-entered aggregate cash figure.
// Its lifecycle is independent of the receipt ledger: saving it never
// touches a receipt record, and it persists across searches.
type ReconciliationTotal struct {
	ds  DataSource
	log *zap.Logger

	mu     sync.Mutex
	raw    string
	saving bool
}

// NewReconciliationTotal creates a total with the given initial raw
// input (already sanitized through SetRawInput).
func NewReconciliationTotal(ds DataSource, initial string, log *zap.Logger) *ReconciliationTotal {
	t := &ReconciliationTotal{ds: ds, log: log}
	t.SetRawInput(initial)
	return t
}

// SetRawInput stores the entered text with all non-digit characters
// stripped. Stripping is sanitization, not validation; it never errors.
func (t *ReconciliationTotal) SetRawInput(text string) {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	t.mu.Lock()
	t.raw = b.String()
	t.mu.Unlock()
}

// RawInput returns the sanitized stored text.
func (t *ReconciliationTotal) RawInput() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.raw
}

// Amount parses the sanitized input. Zero or empty input is
// ErrInvalidAmount.
func (t *ReconciliationTotal) Amount() (decimal.Decimal, error) {
	t.mu.Lock()
	raw := t.raw
	t.mu.Unlock()
	if raw == "" {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.Sign() <= 0 {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return amount, nil
}

// Save commits the total through the data source. Overlapping saves are
// rejected with ErrSaveBusy; repeating a completed save is harmless.
func (t *ReconciliationTotal) Save(ctx context.Context) error {
	amount, err := t.Amount()
	if err != nil {
		return err
	}

	t.mu.Lock()
	if t.saving {
		t.mu.Unlock()
		return domain.ErrSaveBusy
	}
	t.saving = true
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.saving = false
		t.mu.Unlock()
	}()

	if err := t.ds.SaveTotal(ctx, amount); err != nil {
		t.log.Warn("total save failed", zap.String("amount", amount.String()), zap.Error(err))
		return fmt.Errorf("save total: %w", domain.ErrPersistFailed)
	}
	t.log.Info("total saved", zap.String("amount", amount.String()))
	return nil
}
