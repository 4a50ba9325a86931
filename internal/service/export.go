package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/nward/catalog-api/internal/domain"
	"github.com/nward/catalog-api/internal/repo"
)

// ExportService assembles a flat full-collection export: one row per item,
// ordered by id ascending, with every field stringified so the same rows
// serve both the JSON and the CSV representation.
type ExportService struct {
	items repo.ItemRepo
}

// NewExportService constructs an ExportService backed by the provided ItemRepo.
func NewExportService(items repo.ItemRepo) *ExportService {
	return &ExportService{items: items}
}

// Export returns one ExportRow per item across the whole collection.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	items, err := s.items.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(items))
	for _, item := range items {
		row, err := itemToExportRow(item)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// itemToExportRow flattens one item into its export representation.
func itemToExportRow(item domain.Item) (domain.ExportRow, error) {
	if item.Metadata == nil {
		item.Metadata = map[string]any{}
	}
	metadata, err := json.Marshal(item.Metadata)
	if err != nil {
		return domain.ExportRow{}, fmt.Errorf("encode metadata for item %d: %w", item.ID, err)
	}

	row := domain.ExportRow{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		IsActive:    item.IsActive,
		Category:    string(item.Category),
		Tags:        item.Tags,
		Metadata:    string(metadata),
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if item.Value != nil {
		row.Value = strconv.FormatFloat(*item.Value, 'f', 2, 64)
	}
	if row.Tags == nil {
		row.Tags = []string{}
	}
	return row, nil
}
