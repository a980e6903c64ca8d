package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"mf-receipts/internal/domain"
)

// CSVCatalogRepository loads dropdown option lists from label,value CSV
// files. Lists are static: read once at startup and handed to the
// catalog.
type CSVCatalogRepository struct{}

// NewCSVCatalogRepository creates a new repository instance.
func NewCSVCatalogRepository() *CSVCatalogRepository {
	return &CSVCatalogRepository{}
}

// GetOptions reads and parses one option-list CSV file. The first row
// is a header. Duplicate option values are rejected, since value
// uniqueness within a list is an invariant of the catalog.
func (r *CSVCatalogRepository) GetOptions(ctx context.Context, path string) ([]domain.Option, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open option list file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var options []domain.Option
	seen := make(map[string]bool)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("malformed record in %s: want label,value got %d fields", path, len(record))
		}

		opt := domain.Option{Label: record[0], Value: record[1]}
		if opt.Value == "" {
			return nil, fmt.Errorf("empty option value for label %q in %s", opt.Label, path)
		}
		if seen[opt.Value] {
			return nil, fmt.Errorf("value %q in %s: %w", opt.Value, path, domain.ErrDuplicateOption)
		}
		seen[opt.Value] = true
		options = append(options, opt)
	}
	return options, nil
}
