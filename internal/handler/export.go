// Package handler — export.go implements GET /api/v1/items/export.
// Returns the whole collection as a flat table, one row per item.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/nward/catalog-api/internal/domain"
	"github.com/nward/catalog-api/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "name", "description", "is_active", "value",
	"category", "tags", "metadata", "created_at", "updated_at",
}

// ExportItems implements GET /api/v1/items/export.
// It returns one row per item, ordered by id ascending.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportItems(ctx context.Context, req gen.ExportItemsRequestObject) (gen.ExportItemsResponseObject, error) {
	rows, err := s.export.Export(ctx)
	if err != nil {
		return nil, err
	}

	wantCSV := req.Params.Format != nil && *req.Params.Format == gen.ExportItemsParamsFormatCsv
	if wantCSV {
		return buildCSVResponse(rows), nil
	}
	return buildJSONResponse(rows), nil
}

// buildJSONResponse converts domain rows to the typed JSON response.
func buildJSONResponse(rows []domain.ExportRow) gen.ExportItems200JSONResponse {
	out := make(gen.ExportItems200JSONResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToGenRow(r))
	}
	return out
}

// buildCSVResponse encodes domain rows as CSV and wraps in the streaming response type.
// Tags within a row are pipe-separated ("|") to keep each item on a single CSV line.
func buildCSVResponse(rows []domain.ExportRow) gen.ExportItems200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(domainRowToCSVRecord(r))
	}
	w.Flush()

	return gen.ExportItems200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

// domainRowToGenRow maps a domain.ExportRow to the generated gen.ExportRow type.
// Empty optional strings become nil pointers (omitempty in JSON).
func domainRowToGenRow(r domain.ExportRow) gen.ExportRow {
	row := gen.ExportRow{
		Id:        r.ID,
		Name:      r.Name,
		IsActive:  r.IsActive,
		Category:  r.Category,
		Tags:      r.Tags,
		Metadata:  r.Metadata,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Description != "" {
		row.Description = &r.Description
	}
	if r.Value != "" {
		row.Value = &r.Value
	}
	return row
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Tags are joined with "|".
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Name,
		r.Description,
		strconv.FormatBool(r.IsActive),
		r.Value,
		r.Category,
		strings.Join(r.Tags, "|"),
		r.Metadata,
		r.CreatedAt,
		r.UpdatedAt,
	}
}
