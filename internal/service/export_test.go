package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nward/catalog-api/internal/domain"
	"github.com/nward/catalog-api/internal/service"
)

func TestExportService_Export_FlattensItems(t *testing.T) {
	value := 4.5
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []domain.Item{
		{
			ID:          1,
			Name:        "Sample Item 1",
			Description: "first",
			IsActive:    true,
			Value:       &value,
			Category:    domain.CategoryStandard,
			Tags:        []string{"a", "b"},
			Metadata:    map[string]any{"color": "red"},
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:        2,
			Name:      "Sample Item 2",
			IsActive:  false,
			Category:  domain.CategoryPremium,
			CreatedAt: created,
			UpdatedAt: created.Add(time.Hour),
		},
	}

	svc := service.NewExportService(&mockItemRepo{
		all: func(_ context.Context) ([]domain.Item, error) {
			return items, nil
		},
	})

	rows, err := svc.Export(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.EqualValues(t, 1, rows[0].ID)
	assert.Equal(t, "Sample Item 1", rows[0].Name)
	assert.Equal(t, "4.50", rows[0].Value, "value formatted with two fraction digits")
	assert.Equal(t, "standard", rows[0].Category)
	assert.Equal(t, []string{"a", "b"}, rows[0].Tags)
	assert.JSONEq(t, `{"color":"red"}`, rows[0].Metadata)
	assert.Equal(t, "2025-03-01T12:00:00Z", rows[0].CreatedAt)

	assert.Equal(t, "", rows[1].Value, "nil value exports as empty string")
	assert.Equal(t, "{}", rows[1].Metadata, "nil metadata exports as an empty JSON object")
	assert.NotNil(t, rows[1].Tags, "tags must be a non-nil slice for JSON encoding")
	assert.Equal(t, "2025-03-01T13:00:00Z", rows[1].UpdatedAt)
}

func TestExportService_Export_Empty(t *testing.T) {
	svc := service.NewExportService(&mockItemRepo{
		all: func(_ context.Context) ([]domain.Item, error) {
			return []domain.Item{}, nil
		},
	})

	rows, err := svc.Export(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
