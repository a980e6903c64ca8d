package domain

// Option is a single selectable entry in a dropdown list.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// IsZero reports whether the option is the empty (unselected) value.
func (o Option) IsZero() bool {
	return o.Value == ""
}

// Branches pairs the two organizational identifiers derived from a center.
type Branches struct {
	CashierBranch Option `json:"cashier_branch"`
	LoanBranch    Option `json:"loan_branch"`
}
