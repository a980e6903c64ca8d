package usecase_test

import (
	"fmt"
	"testing"

	"mf-receipts/internal/domain"
	"mf-receipts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropdownCatalog_Filter(t *testing.T) {
	groups := make([]domain.Option, 0, 10)
	for i := 1; i <= 10; i++ {
		groups = append(groups, domain.Option{
			Label: fmt.Sprintf("Group %d", i),
			Value: fmt.Sprintf("group%d", i),
		})
	}

	catalog := usecase.NewDropdownCatalog()
	require.NoError(t, catalog.Register("groups", groups))

	tests := []struct {
		name      string
		substring string
		expected  []string
	}{
		{
			name:      "digit matches 1 and 10 in source order",
			substring: "1",
			expected:  []string{"Group 1", "Group 10"},
		},
		{
			name:      "case-insensitive match",
			substring: "gRoUp 3",
			expected:  []string{"Group 3"},
		},
		{
			name:      "empty substring returns everything",
			substring: "",
			expected: []string{
				"Group 1", "Group 2", "Group 3", "Group 4", "Group 5",
				"Group 6", "Group 7", "Group 8", "Group 9", "Group 10",
			},
		},
		{
			name:      "no match",
			substring: "zone",
			expected:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := catalog.Filter("groups", tt.substring)
			labels := make([]string, 0, len(matched))
			for _, opt := range matched {
				labels = append(labels, opt.Label)
			}
			assert.Equal(t, tt.expected, labels)
		})
	}
}

func TestDropdownCatalog_Register_RejectsDuplicateValues(t *testing.T) {
	catalog := usecase.NewDropdownCatalog()
	err := catalog.Register("centers", []domain.Option{
		{Label: "Center 1", Value: "center1"},
		{Label: "Center One", Value: "center1"},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateOption)
	assert.Empty(t, catalog.Options("centers"))
}

func TestDropdownCatalog_Lookup(t *testing.T) {
	catalog := usecase.NewDropdownCatalog()
	require.NoError(t, catalog.Register("centers", []domain.Option{
		{Label: "Center 1", Value: "center1"},
		{Label: "Center 2", Value: "center2"},
	}))

	opt, ok := catalog.Lookup("centers", "center2")
	assert.True(t, ok)
	assert.Equal(t, "Center 2", opt.Label)

	_, ok = catalog.Lookup("centers", "center9")
	assert.False(t, ok)
}
