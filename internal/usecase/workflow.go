package usecase

import (
	"context"
	"fmt"
	"sync"

	"mf-receipts/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WorkflowConfig carries the per-deployment switches of the receipt
// workflow.
type WorkflowConfig struct {
	// RequireGroup enables the group rule of the search gate.
	RequireGroup bool
	// DefaultTotal preloads the reconciliation total input.
	DefaultTotal string
}

// ReceiptWorkflow drives the selection, search and reconciliation flow
// for one cashier session. It owns the reentrancy rules the components
// themselves stay agnostic of: the single search-in-flight flag, search
// staleness tokens, and the authentication guard at entry.
type ReceiptWorkflow struct {
	ds      DataSource
	log     *zap.Logger
	catalog *DropdownCatalog

	selection *SelectionState
	resolver  *BranchResolver
	gate      *SearchGate
	ledger    *ReceiptLedger
	total     *ReconciliationTotal

	mu            sync.Mutex
	searching     bool
	searchSeq     uint64
	currentSearch uint64
	lastQuery     *domain.Query
}

// NewReceiptWorkflow wires a workflow. The session guard runs once
// here, at workflow entry, not on every operation.
func NewReceiptWorkflow(ds DataSource, session *SessionState, catalog *DropdownCatalog, cfg WorkflowConfig, log *zap.Logger) (*ReceiptWorkflow, error) {
	if err := session.RequireAuthenticated(); err != nil {
		return nil, err
	}
	selection := NewSelectionState()
	w := &ReceiptWorkflow{
		ds:        ds,
		log:       log,
		catalog:   catalog,
		selection: selection,
		resolver:  NewBranchResolver(ds, selection, log),
		gate:      NewSearchGate(cfg.RequireGroup),
		ledger:    NewReceiptLedger(),
		total:     NewReconciliationTotal(ds, cfg.DefaultTotal, log),
	}
	log.Info("receipt workflow opened", zap.String("session_id", session.SessionID()))
	return w, nil
}

// Selection exposes the form state.
func (w *ReceiptWorkflow) Selection() *SelectionState { return w.selection }

// Ledger exposes the current receipt collection.
func (w *ReceiptWorkflow) Ledger() *ReceiptLedger { return w.ledger }

// Total exposes the reconciliation total.
func (w *ReceiptWorkflow) Total() *ReconciliationTotal { return w.total }

// Catalog exposes the dropdown option lists.
func (w *ReceiptWorkflow) Catalog() *DropdownCatalog { return w.catalog }

// SelectCenter sets the center and kicks off (or cancels) branch
// resolution. The returned channel closes when the resolution attempt
// settles; selecting the empty center returns an already-closed
// channel.
func (w *ReceiptWorkflow) SelectCenter(ctx context.Context, opt domain.Option) <-chan struct{} {
	// setCenter clears both derived branches before any resolution.
	_ = w.selection.SelectField(domain.FieldCenter, opt)
	if opt.IsZero() {
		w.resolver.CancelPending()
		done := make(chan struct{})
		close(done)
		return done
	}
	return w.resolver.Resolve(ctx, opt.Value)
}

// SelectField routes a direct-entry field edit. Center edits go through
// SelectCenter so resolution stays in step with the field value.
func (w *ReceiptWorkflow) SelectField(ctx context.Context, kind domain.FieldName, opt domain.Option) error {
	if kind == domain.FieldCenter {
		w.SelectCenter(ctx, opt)
		return nil
	}
	return w.selection.SelectField(kind, opt)
}

// SetSearchQuery stores the free-text query.
func (w *ReceiptWorkflow) SetSearchQuery(text string) {
	w.selection.SetSearchQuery(text)
}

// Search validates the selection and runs the remote search. Field
// violations come back as a domain.FieldErrors error and are also
// published on the selection state. A submit during branch resolution
// or while another search is in flight is rejected, not queued. A
// failed search leaves the previous ledger intact.
func (w *ReceiptWorkflow) Search(ctx context.Context) error {
	if w.selection.Status() == domain.ResolvePending {
		return domain.ErrResolving
	}
	query, fieldErrs := w.gate.Submit(w.selection.Snapshot())
	if fieldErrs != nil {
		w.selection.SetFieldErrors(fieldErrs)
		return fieldErrs
	}
	return w.runSearch(ctx, query)
}

// Refresh re-runs the last successful query under the same busy/token
// discipline as Search.
func (w *ReceiptWorkflow) Refresh(ctx context.Context) error {
	if w.selection.Status() == domain.ResolvePending {
		return domain.ErrResolving
	}
	w.mu.Lock()
	last := w.lastQuery
	w.mu.Unlock()
	if last == nil {
		return domain.ErrNoQuery
	}
	return w.runSearch(ctx, *last)
}

func (w *ReceiptWorkflow) runSearch(ctx context.Context, query domain.Query) error {
	w.mu.Lock()
	if w.searching {
		w.mu.Unlock()
		return domain.ErrSearchBusy
	}
	w.searching = true
	w.searchSeq++
	token := w.searchSeq
	w.currentSearch = token
	w.mu.Unlock()

	w.log.Debug("search started",
		zap.Uint64("token", token),
		zap.String("center", query.Center.Value),
		zap.String("query", query.SearchQuery))
	records, err := w.ds.SearchReceipts(ctx, query)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.searching = false
	if token != w.currentSearch {
		w.log.Debug("stale search result dropped", zap.Uint64("token", token))
		return nil
	}
	if err != nil {
		w.log.Warn("search failed", zap.Uint64("token", token), zap.Error(err))
		return fmt.Errorf("search receipts: %w", domain.ErrSearchFailed)
	}
	w.ledger.ReplaceAll(records)
	w.lastQuery = &query
	w.log.Info("search succeeded",
		zap.Uint64("token", token),
		zap.Int("records", len(records)))
	return nil
}

// EnterPayment parses the entered amount, applies it to the ledger and
// commits it through the data source. The local update is optimistic:
// it stands even when the commit fails, and the failure is reported for
// a user-initiated retry.
func (w *ReceiptWorkflow) EnterPayment(ctx context.Context, receiptID, rawAmount string) (domain.ReceiptRecord, error) {
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || amount.Sign() <= 0 {
		return domain.ReceiptRecord{}, domain.ErrInvalidAmount
	}
	record, err := w.ledger.ApplyPayment(receiptID, amount)
	if err != nil {
		return domain.ReceiptRecord{}, err
	}
	if err := w.ds.CommitPayment(ctx, receiptID, amount); err != nil {
		w.log.Warn("payment commit failed",
			zap.String("receipt_id", receiptID),
			zap.String("amount", amount.String()),
			zap.Error(err))
		return record, fmt.Errorf("commit payment %s: %w", receiptID, domain.ErrPersistFailed)
	}
	w.log.Info("payment applied",
		zap.String("receipt_id", receiptID),
		zap.String("amount", amount.String()),
		zap.String("due", record.DueAmount.String()))
	return record, nil
}

// SetTotalInput stores the aggregate total text (digits only).
func (w *ReceiptWorkflow) SetTotalInput(text string) {
	w.total.SetRawInput(text)
}

// SaveTotal persists the aggregate total. Whether it should equal the
// ledger's outstanding sum is not enforced anywhere; the two figures
// are logged side by side so a mismatch is at least visible.
func (w *ReceiptWorkflow) SaveTotal(ctx context.Context) error {
	if err := w.total.Save(ctx); err != nil {
		return err
	}
	w.log.Debug("total vs ledger",
		zap.String("total", w.total.RawInput()),
		zap.String("ledger_outstanding", w.ledger.OutstandingTotal().String()))
	return nil
}

// Close abandons the workflow: pending resolutions are canceled and any
// in-flight search result is invalidated so late completions cannot
// mutate state the user no longer sees.
func (w *ReceiptWorkflow) Close() {
	w.resolver.CancelPending()
	w.mu.Lock()
	w.currentSearch = 0
	w.mu.Unlock()
	w.log.Info("receipt workflow closed")
}
