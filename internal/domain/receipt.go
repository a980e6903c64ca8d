package domain

import "github.com/shopspring/decimal"

// ReceiptRecord is a single borrower's rental/payment ledger line.
// PayAmount is nil until a payment has been entered for the record.
type ReceiptRecord struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	RentalAmount decimal.Decimal  `json:"rental_amount"`
	PayAmount    *decimal.Decimal `json:"pay_amount,omitempty"`
	DueAmount    decimal.Decimal  `json:"due_amount"`
}

// Due computes the outstanding amount for a rental after a payment,
// floored at zero.
func Due(rental, paid decimal.Decimal) decimal.Decimal {
	due := rental.Sub(paid)
	if due.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return due
}
