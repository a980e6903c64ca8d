package domain

import (
	"fmt"
	"sort"
	"strings"
)

// DomainError carries a stable code alongside a human-readable message.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Error taxonomy. Lookup/Search/Persist failures are transient remote
// conditions retried only by the user; InvalidAmount is local input
// validation; NotFound indicates a wiring defect, not a user error.
var (
	ErrLookupFailed     = NewDomainError("LOOKUP_FAILED", "Branch lookup failed")
	ErrSearchFailed     = NewDomainError("SEARCH_FAILED", "Receipt search failed")
	ErrPersistFailed    = NewDomainError("PERSIST_FAILED", "Could not persist the change")
	ErrInvalidAmount    = NewDomainError("INVALID_AMOUNT", "Amount must be a positive number")
	ErrNotFound         = NewDomainError("NOT_FOUND", "Receipt record not found")
	ErrSearchBusy       = NewDomainError("SEARCH_BUSY", "A search is already in progress")
	ErrResolving        = NewDomainError("RESOLVING", "Branch resolution is still in progress")
	ErrDerivedField     = NewDomainError("DERIVED_FIELD", "Field is derived and cannot be set directly")
	ErrSaveBusy         = NewDomainError("SAVE_BUSY", "A save is already in progress")
	ErrNotAuthenticated = NewDomainError("NOT_AUTHENTICATED", "Login required")
	ErrDuplicateOption  = NewDomainError("DUPLICATE_OPTION", "Option value already present in list")
	ErrNoQuery          = NewDomainError("NO_QUERY", "No search has completed yet")
)

// FieldErrors maps form fields to their validation messages. It is
// returned as a whole; validation never short-circuits on the first
// violation.
type FieldErrors map[FieldName]string

// Error implements the error interface with a deterministic ordering.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
