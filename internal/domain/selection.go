package domain

// FieldName identifies one field of the selection form.
type FieldName string

const (
	FieldCenter        FieldName = "center"
	FieldGroup         FieldName = "group"
	FieldCashierBranch FieldName = "cashierBranch"
	FieldLoanBranch    FieldName = "loanBranch"
	FieldSearch        FieldName = "search"
)

// Derived wraps a field value the user cannot set directly. It records
// which resolution request produced the value, so a stale resolution can
// never be mistaken for the current one.
type Derived struct {
	Value           Option `json:"value"`
	SourceRequestID uint64 `json:"source_request_id"`
}

// IsZero reports whether no value has been derived.
func (d Derived) IsZero() bool {
	return d.Value.IsZero()
}

// Query is the immutable snapshot handed to the remote search once
// validation passes.
type Query struct {
	Center        Option `json:"center"`
	Group         Option `json:"group"`
	CashierBranch Option `json:"cashier_branch"`
	LoanBranch    Option `json:"loan_branch"`
	SearchQuery   string `json:"search_query"`
}

// ResolveStatus is the caller-visible state of a branch resolution.
type ResolveStatus string

const (
	ResolveIdle    ResolveStatus = "idle"
	ResolvePending ResolveStatus = "resolving"
	ResolveDone    ResolveStatus = "resolved"
	ResolveFailed  ResolveStatus = "failed"
)
