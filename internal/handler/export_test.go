package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nward/catalog-api/internal/domain"
	"github.com/nward/catalog-api/internal/handler"
	"github.com/nward/catalog-api/internal/handler/gen"
)

// mockExporter is a test double for handler.Exporter.
type mockExporter struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExporter) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.Exporter = (*mockExporter)(nil)

func exportRowFixtures() []domain.ExportRow {
	return []domain.ExportRow{
		{
			ID:          1,
			Name:        "Sample Item 1",
			Description: "first",
			IsActive:    true,
			Value:       "4.50",
			Category:    "standard",
			Tags:        []string{"a", "b"},
			Metadata:    `{"color":"red"}`,
			CreatedAt:   "2025-03-01T12:00:00Z",
			UpdatedAt:   "2025-03-01T12:00:00Z",
		},
		{
			ID:        2,
			Name:      "Sample Item 2",
			IsActive:  false,
			Category:  "premium",
			Tags:      []string{},
			Metadata:  "{}",
			CreatedAt: "2025-03-01T12:00:00Z",
			UpdatedAt: "2025-03-01T13:00:00Z",
		},
	}
}

func newExportHandler(exp handler.Exporter) http.Handler {
	srv := handler.NewServer(nil, exp, nil)
	return gen.Handler(gen.NewStrictHandler(srv, nil))
}

func TestExportItems_200_JSON(t *testing.T) {
	exp := &mockExporter{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return exportRowFixtures(), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/export", nil)
	rec := httptest.NewRecorder()
	newExportHandler(exp).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var rows []gen.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Sample Item 1", rows[0].Name)
	require.NotNil(t, rows[0].Value)
	assert.Equal(t, "4.50", *rows[0].Value)
	assert.Nil(t, rows[1].Value, "absent value omitted from JSON")
	assert.Equal(t, "{}", rows[1].Metadata)
}

func TestExportItems_200_CSV(t *testing.T) {
	exp := &mockExporter{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return exportRowFixtures(), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/export?format=csv", nil)
	rec := httptest.NewRecorder()
	newExportHandler(exp).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one record per item")

	assert.Equal(t, []string{
		"id", "name", "description", "is_active", "value",
		"category", "tags", "metadata", "created_at", "updated_at",
	}, records[0])

	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "Sample Item 1", records[1][1])
	assert.Equal(t, "a|b", records[1][6], "tags pipe-joined within the cell")
	assert.Equal(t, `{"color":"red"}`, records[1][7])

	assert.Equal(t, "", records[2][4], "nil value exported as empty cell")
}

func TestExportItems_200_CSV_Empty(t *testing.T) {
	exp := &mockExporter{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return []domain.ExportRow{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/export?format=csv", nil)
	rec := httptest.NewRecorder()
	newExportHandler(exp).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

func TestExportItems_200_JSON_Empty(t *testing.T) {
	exp := &mockExporter{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return []domain.ExportRow{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/export", nil)
	rec := httptest.NewRecorder()
	newExportHandler(exp).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String(), "empty export is an empty JSON array, not null")
}
