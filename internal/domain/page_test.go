package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nward/catalog-api/internal/domain"
)

func TestNewPaginationParams(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name  string
		page  *int
		limit *int
		want  domain.PaginationParams
	}{
		{"nil inputs use defaults", nil, nil, domain.PaginationParams{Page: 1, Limit: 20}},
		{"explicit values kept", intPtr(3), intPtr(50), domain.PaginationParams{Page: 3, Limit: 50}},
		{"limit clamped to 100", intPtr(1), intPtr(500), domain.PaginationParams{Page: 1, Limit: 100}},
		{"zero page falls back", intPtr(0), intPtr(10), domain.PaginationParams{Page: 1, Limit: 10}},
		{"negative limit falls back", intPtr(2), intPtr(-5), domain.PaginationParams{Page: 2, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NewPaginationParams(tt.page, tt.limit))
		})
	}
}

func TestPaginationParams_Offset(t *testing.T) {
	assert.Zero(t, domain.PaginationParams{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, domain.PaginationParams{Page: 3, Limit: 20}.Offset())
}
