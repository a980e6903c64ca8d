package usecase

import (
	"strings"

	"mf-receipts/internal/domain"
)

// SearchGate validates that a selection is complete enough to run a
// receipt search. All rules are evaluated; violations are reported
// together rather than one at a time. The gate is pure validation;
// reentrancy guarding belongs to the workflow that drives it.
type SearchGate struct {
	// RequireGroup enables the group rule in hierarchies where group
	// selection sits between center and borrower.
	RequireGroup bool
}

// NewSearchGate creates a gate for the given hierarchy configuration.
func NewSearchGate(requireGroup bool) *SearchGate {
	return &SearchGate{RequireGroup: requireGroup}
}

// Submit validates the snapshot. On success it returns the immutable
// query to hand to the remote search and a nil error map; otherwise it
// returns the complete set of field errors and a zero query.
func (g *SearchGate) Submit(snap Snapshot) (domain.Query, domain.FieldErrors) {
	errs := make(domain.FieldErrors)

	if snap.Center.IsZero() {
		errs[domain.FieldCenter] = "Please select a center"
	}
	if g.RequireGroup && snap.Group.IsZero() {
		errs[domain.FieldGroup] = "Please select a group"
	}
	if strings.TrimSpace(snap.SearchQuery) == "" {
		errs[domain.FieldSearch] = "Please enter a username or ID"
	}

	if len(errs) > 0 {
		return domain.Query{}, errs
	}
	return domain.Query{
		Center:        snap.Center,
		Group:         snap.Group,
		CashierBranch: snap.CashierBranch.Value,
		LoanBranch:    snap.LoanBranch.Value,
		SearchQuery:   snap.SearchQuery,
	}, nil
}
