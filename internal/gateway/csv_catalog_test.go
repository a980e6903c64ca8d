package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"mf-receipts/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCSVCatalogRepository_GetOptions(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.Option
		wantErr  bool
	}{
		{
			name: "valid option list in source order",
			csvData: [][]string{
				{"label", "value"},
				{"Center 1", "center1"},
				{"Center 2", "center2"},
				{"Center 3", "center3"},
			},
			expected: []domain.Option{
				{Label: "Center 1", Value: "center1"},
				{Label: "Center 2", Value: "center2"},
				{Label: "Center 3", Value: "center3"},
			},
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"label", "value"},
			},
			expected: nil,
		},
		{
			name: "duplicate values rejected",
			csvData: [][]string{
				{"label", "value"},
				{"Group 1", "group1"},
				{"Group One", "group1"},
			},
			wantErr: true,
		},
		{
			name: "empty value rejected",
			csvData: [][]string{
				{"label", "value"},
				{"Group 1", ""},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := createTempCSV(t, tt.csvData)
			if err != nil {
				t.Fatalf("Failed to create temp CSV file: %v", err)
			}

			repo := NewCSVCatalogRepository()
			options, err := repo.GetOptions(context.Background(), tmpFile)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, options)
		})
	}
}

func TestCSVCatalogRepository_GetOptions_MissingFile(t *testing.T) {
	repo := NewCSVCatalogRepository()
	_, err := repo.GetOptions(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func createTempCSV(t *testing.T, rows [][]string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.csv")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return "", err
	}
	writer.Flush()
	return path, writer.Error()
}
