package usecase

import (
	"fmt"
	"strings"

	"mf-receipts/internal/domain"
)

// DropdownCatalog holds the pre-fetched option lists the selection form
// draws from. Lists are registered once and never mutated afterwards;
// filtering is a pure in-memory operation.
type DropdownCatalog struct {
	lists map[string][]domain.Option
}

// NewDropdownCatalog creates an empty catalog.
func NewDropdownCatalog() *DropdownCatalog {
	return &DropdownCatalog{lists: make(map[string][]domain.Option)}
}

// Register stores a named option list. Option values must be unique
// within the list.
func (c *DropdownCatalog) Register(name string, options []domain.Option) error {
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if seen[opt.Value] {
			return fmt.Errorf("list %q: value %q: %w", name, opt.Value, domain.ErrDuplicateOption)
		}
		seen[opt.Value] = true
	}
	c.lists[name] = append([]domain.Option(nil), options...)
	return nil
}

// Options returns the full list registered under name, in source order.
func (c *DropdownCatalog) Options(name string) []domain.Option {
	return append([]domain.Option(nil), c.lists[name]...)
}

// Filter returns the options whose label contains the given substring,
// case-insensitively, preserving source order. An empty substring
// returns the whole list.
func (c *DropdownCatalog) Filter(name, substring string) []domain.Option {
	needle := strings.ToLower(substring)
	matched := make([]domain.Option, 0)
	for _, opt := range c.lists[name] {
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			matched = append(matched, opt)
		}
	}
	return matched
}

// Lookup finds an option by value within a named list.
func (c *DropdownCatalog) Lookup(name, value string) (domain.Option, bool) {
	for _, opt := range c.lists[name] {
		if opt.Value == value {
			return opt, true
		}
	}
	return domain.Option{}, false
}
