package usecase

import (
	"sync"

	"mf-receipts/internal/domain"

	"github.com/shopspring/decimal"
)

// ReceiptLedger holds the ordered receipt records produced by one
// search. A new search replaces the collection wholesale; payment edits
// mutate one record at a time. Records are indexed by id so keyed edits
// do not scan.
type ReceiptLedger struct {
	mu      sync.RWMutex
	records []domain.ReceiptRecord
	index   map[string]int
}

// NewReceiptLedger creates an empty ledger.
func NewReceiptLedger() *ReceiptLedger {
	return &ReceiptLedger{index: make(map[string]int)}
}

// ReplaceAll swaps in the records of a new search. Due amounts are
// trusted verbatim on load; they are only recomputed by payment edits.
func (l *ReceiptLedger) ReplaceAll(records []domain.ReceiptRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append([]domain.ReceiptRecord(nil), records...)
	l.index = make(map[string]int, len(records))
	for i, rec := range l.records {
		l.index[rec.ID] = i
	}
}

// ApplyPayment records a payment against one receipt and recomputes its
// due amount as max(0, rental - paid). The paid and due fields change
// together under the lock; no reader can observe one without the other.
// Other records are untouched. Returns the updated record.
func (l *ReceiptLedger) ApplyPayment(id string, amount decimal.Decimal) (domain.ReceiptRecord, error) {
	if amount.Sign() <= 0 {
		return domain.ReceiptRecord{}, domain.ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	i, ok := l.index[id]
	if !ok {
		return domain.ReceiptRecord{}, domain.ErrNotFound
	}
	paid := amount
	l.records[i].PayAmount = &paid
	l.records[i].DueAmount = domain.Due(l.records[i].RentalAmount, amount)
	return l.records[i], nil
}

// Get returns the record with the given id.
func (l *ReceiptLedger) Get(id string) (domain.ReceiptRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.index[id]
	if !ok {
		return domain.ReceiptRecord{}, false
	}
	return l.records[i], true
}

// Records returns a copy of the ledger in search order.
func (l *ReceiptLedger) Records() []domain.ReceiptRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.ReceiptRecord(nil), l.records...)
}

// Len reports the number of records.
func (l *ReceiptLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// OutstandingTotal sums the due amounts across the ledger.
func (l *ReceiptLedger) OutstandingTotal() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := decimal.Zero
	for _, rec := range l.records {
		total = total.Add(rec.DueAmount)
	}
	return total
}
