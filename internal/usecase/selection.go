package usecase

import (
	"context"
	"sync"

	"mf-receipts/internal/domain"

	"go.uber.org/zap"
)

// Snapshot is a point-in-time copy of the selection form, safe to hand
// to validation without holding the state lock.
type Snapshot struct {
	Center        domain.Option
	Group         domain.Option
	CashierBranch domain.Derived
	LoanBranch    domain.Derived
	SearchQuery   string
}

// SelectionState holds the hierarchical filter fields and their
// validation errors. Branch fields are derived: only a completed branch
// resolution may set them, and clearing the center clears them.
type SelectionState struct {
	mu            sync.Mutex
	center        domain.Option
	group         domain.Option
	cashierBranch domain.Derived
	loanBranch    domain.Derived
	searchQuery   string
	fieldErrors   domain.FieldErrors

	status     domain.ResolveStatus
	currentReq uint64

	mutators map[domain.FieldName]func(*SelectionState, domain.Option)
}

// NewSelectionState creates an empty selection.
func NewSelectionState() *SelectionState {
	s := &SelectionState{
		fieldErrors: make(domain.FieldErrors),
		status:      domain.ResolveIdle,
	}
	// Dispatch table for the directly editable fields. Derived fields
	// are deliberately absent.
	s.mutators = map[domain.FieldName]func(*SelectionState, domain.Option){
		domain.FieldCenter: (*SelectionState).setCenter,
		domain.FieldGroup:  (*SelectionState).setGroup,
	}
	return s
}

// SelectField sets a directly editable field. Selecting a derived field
// (cashier or loan branch) is rejected with ErrDerivedField.
func (s *SelectionState) SelectField(kind domain.FieldName, opt domain.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate, ok := s.mutators[kind]
	if !ok {
		return domain.ErrDerivedField
	}
	mutate(s, opt)
	return nil
}

func (s *SelectionState) setCenter(opt domain.Option) {
	s.center = opt
	s.cashierBranch = domain.Derived{}
	s.loanBranch = domain.Derived{}
	// Invalidate the current resolution in the same critical section:
	// a completion issued for the previous center must not pass the
	// token check once the center has changed.
	s.currentReq = 0
	s.status = domain.ResolveIdle
	delete(s.fieldErrors, domain.FieldCenter)
}

func (s *SelectionState) setGroup(opt domain.Option) {
	s.group = opt
	delete(s.fieldErrors, domain.FieldGroup)
}

// SetSearchQuery stores the free-text query and clears its field error
// on any non-empty change.
func (s *SelectionState) SetSearchQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = text
	if text != "" {
		delete(s.fieldErrors, domain.FieldSearch)
	}
}

// Snapshot returns a copy of the current field values.
func (s *SelectionState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Center:        s.center,
		Group:         s.group,
		CashierBranch: s.cashierBranch,
		LoanBranch:    s.loanBranch,
		SearchQuery:   s.searchQuery,
	}
}

// FieldErrors returns a copy of the current validation messages.
func (s *SelectionState) FieldErrors() domain.FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(domain.FieldErrors, len(s.fieldErrors))
	for k, v := range s.fieldErrors {
		out[k] = v
	}
	return out
}

// SetFieldErrors replaces the validation messages wholesale. Only
// SearchGate validation populates errors; edits clear them eagerly.
func (s *SelectionState) SetFieldErrors(fe domain.FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fieldErrors = make(domain.FieldErrors, len(fe))
	for k, v := range fe {
		s.fieldErrors[k] = v
	}
}

// Status reports the state of the current branch resolution.
func (s *SelectionState) Status() domain.ResolveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// beginResolve marks the given request as the current resolution.
// Any previously current request becomes stale.
func (s *SelectionState) beginResolve(requestID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentReq = requestID
	s.status = domain.ResolvePending
}

// resetResolution invalidates the current request without starting a
// new one. Used when the center is cleared or the workflow closes.
func (s *SelectionState) resetResolution() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentReq = 0
	s.status = domain.ResolveIdle
	s.cashierBranch = domain.Derived{}
	s.loanBranch = domain.Derived{}
}

// adoptBranches applies a resolution result if the request is still
// current. Both branch fields are set together or not at all. Returns
// false when the result was stale and dropped.
func (s *SelectionState) adoptBranches(requestID uint64, branches domain.Branches) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if requestID != s.currentReq {
		return false
	}
	s.cashierBranch = domain.Derived{Value: branches.CashierBranch, SourceRequestID: requestID}
	s.loanBranch = domain.Derived{Value: branches.LoanBranch, SourceRequestID: requestID}
	s.status = domain.ResolveDone
	return true
}

// failResolve records a resolution failure if the request is still
// current. Branches stay empty; the caller may retry with the same
// center.
func (s *SelectionState) failResolve(requestID uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if requestID != s.currentReq {
		return false
	}
	s.status = domain.ResolveFailed
	return true
}

// BranchResolver derives cashier/loan branch values from a center
// choice. Every resolution carries a strictly increasing request id;
// starting a new one supersedes and cancels the previous, and a
// superseded completion never mutates the selection.
type BranchResolver struct {
	ds    DataSource
	state *SelectionState
	log   *zap.Logger

	mu     sync.Mutex
	nextID uint64
	cancel context.CancelFunc
}

// NewBranchResolver creates a resolver bound to one selection state.
func NewBranchResolver(ds DataSource, state *SelectionState, log *zap.Logger) *BranchResolver {
	return &BranchResolver{ds: ds, state: state, log: log}
}

// Resolve starts an asynchronous branch resolution for the given center
// value. The returned channel closes once the attempt has settled,
// whether its result was adopted or dropped as stale.
func (r *BranchResolver) Resolve(ctx context.Context, centerValue string) <-chan struct{} {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	if r.cancel != nil {
		r.cancel()
	}
	rctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	r.state.beginResolve(id)
	r.log.Debug("branch resolution started",
		zap.Uint64("request_id", id),
		zap.String("center", centerValue))

	settled := make(chan struct{})
	go func() {
		defer close(settled)
		defer cancel()
		branches, err := r.ds.ResolveBranches(rctx, centerValue)
		if err != nil {
			if r.state.failResolve(id) {
				r.log.Warn("branch resolution failed",
					zap.Uint64("request_id", id),
					zap.String("center", centerValue),
					zap.Error(err))
			} else {
				r.log.Debug("stale branch resolution dropped",
					zap.Uint64("request_id", id))
			}
			return
		}
		if !r.state.adoptBranches(id, branches) {
			r.log.Debug("stale branch resolution dropped",
				zap.Uint64("request_id", id))
			return
		}
		r.log.Debug("branches resolved",
			zap.Uint64("request_id", id),
			zap.String("cashier_branch", branches.CashierBranch.Value),
			zap.String("loan_branch", branches.LoanBranch.Value))
	}()
	return settled
}

// CancelPending cancels the in-flight resolution, if any, and
// invalidates its request id so a late completion cannot land.
func (r *BranchResolver) CancelPending() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()
	r.state.resetResolution()
}
