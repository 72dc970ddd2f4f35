package repository

import (
	"testing"

	"atelier/infras/otel/mocks"
)

type sortEntity struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	OwnerName string `db:"owner_name" table:"owners" column:"name"`
	CreatedAt string `db:"created_at"`
}

func TestOrderColumn(t *testing.T) {
	repo := NewRepository[sortEntity]("sortEntity", "entities", "id", nil, mocks.NewOtel())

	tests := []struct {
		name     string
		sortBy   string
		expected string
	}{
		{
			name:     "own column is table qualified",
			sortBy:   "title",
			expected: "entities.title",
		},
		{
			name:     "joined column resolves to its alias",
			sortBy:   "owner_name",
			expected: "owner_name",
		},
		{
			name:     "creation timestamp",
			sortBy:   "created_at",
			expected: "entities.created_at",
		},
		{
			name:     "raw joined column name is not sortable",
			sortBy:   "name",
			expected: "entities.created_at",
		},
		{
			name:     "unknown column falls back",
			sortBy:   "modified_at",
			expected: "entities.created_at",
		},
		{
			name:     "subquery never reaches the order clause",
			sortBy:   "(SELECT CASE WHEN (SELECT password FROM admins LIMIT 1) > 'm' THEN id ELSE title END)",
			expected: "entities.created_at",
		},
		{
			name:     "statement terminator never reaches the order clause",
			sortBy:   "id; DROP TABLE entities--",
			expected: "entities.created_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repo.orderColumn(tt.sortBy); got != tt.expected {
				t.Errorf("expected order column %q, got %q", tt.expected, got)
			}
		})
	}
}
