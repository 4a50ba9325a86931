package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/nward/catalog-api/internal/domain"
	"github.com/nward/catalog-api/internal/handler/gen"
)

// CreateItem handles POST /api/v1/items.
func (s *Server) CreateItem(ctx context.Context, req gen.CreateItemRequestObject) (gen.CreateItemResponseObject, error) {
	created, err := s.items.Create(ctx, requestToItem(0, req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return gen.CreateItem409JSONResponse(conflictBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateItem422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateItem201JSONResponse(itemToResponse(created)), nil
}

// ListItems handles GET /api/v1/items.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100) plus the
// optional ?search=, ?is_active=, and ?category= filters, ANDed together.
// The pagination total counts the whole filtered set, not just this page.
//
// An unknown ?category= value is a client error, not an empty result: the
// generated binder accepts any string for the param, so validate it here.
func (s *Server) ListItems(ctx context.Context, req gen.ListItemsRequestObject) (gen.ListItemsResponseObject, error) {
	if req.Params.Category != nil && !domain.Category(*req.Params.Category).Valid() {
		return gen.ListItems400JSONResponse(validationBody(
			fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *req.Params.Category))), nil
	}

	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	filter := requestToFilter(req.Params)

	items, total, err := s.items.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Item, len(items))
	for i, item := range items {
		data[i] = itemToResponse(item)
	}
	return gen.ListItems200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// GetItem handles GET /api/v1/items/{id}.
func (s *Server) GetItem(ctx context.Context, req gen.GetItemRequestObject) (gen.GetItemResponseObject, error) {
	item, err := s.items.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetItem404JSONResponse(notFoundBody("item not found")), nil
		}
		return nil, err
	}

	return gen.GetItem200JSONResponse(itemToResponse(item)), nil
}

// ItemExists handles HEAD /api/v1/items/{id}.
// Returns 204 when the item exists, 404 otherwise — no body either way.
func (s *Server) ItemExists(ctx context.Context, req gen.ItemExistsRequestObject) (gen.ItemExistsResponseObject, error) {
	exists, err := s.items.Exists(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return gen.ItemExists404Response{}, nil
	}
	return gen.ItemExists204Response{}, nil
}

// UpdateItem handles PUT /api/v1/items/{id}.
// The request body replaces every mutable field wholesale; fields omitted
// from the body are cleared, not preserved.
func (s *Server) UpdateItem(ctx context.Context, req gen.UpdateItemRequestObject) (gen.UpdateItemResponseObject, error) {
	updated, err := s.items.Update(ctx, requestToItem(req.Id, req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateItem404JSONResponse(notFoundBody("item not found")), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.UpdateItem409JSONResponse(conflictBody(err)), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateItem422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateItem200JSONResponse(itemToResponse(updated)), nil
}

// DeleteItem handles DELETE /api/v1/items/{id}.
func (s *Server) DeleteItem(ctx context.Context, req gen.DeleteItemRequestObject) (gen.DeleteItemResponseObject, error) {
	err := s.items.Delete(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteItem404JSONResponse(notFoundBody("item not found")), nil
		}
		return nil, err
	}

	return gen.DeleteItem204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToItem converts an ItemRequest body into a domain.Item, carrying the
// path ID for updates (pass 0 for creates). Optional fields absent from the
// body become their zero values — full-replace semantics, not patch.
func requestToItem(id int64, body *gen.ItemRequest) domain.Item {
	item := domain.Item{
		ID:       id,
		Name:     body.Name,
		IsActive: body.IsActive,
		Value:    body.Value,
		Category: domain.Category(body.Category),
	}
	if body.Description != nil {
		item.Description = *body.Description
	}
	if body.Tags != nil {
		item.Tags = *body.Tags
	}
	if body.Metadata != nil {
		item.Metadata = *body.Metadata
	}
	return item
}

// requestToFilter maps the optional list query params onto a domain.ItemFilter.
func requestToFilter(params gen.ListItemsParams) domain.ItemFilter {
	var f domain.ItemFilter
	if params.Search != nil {
		f.Search = *params.Search
	}
	f.IsActive = params.IsActive
	if params.Category != nil {
		c := domain.Category(*params.Category)
		f.Category = &c
	}
	return f
}

// itemToResponse converts a domain.Item into the generated gen.Item type.
func itemToResponse(item domain.Item) gen.Item {
	resp := gen.Item{
		Id:        item.ID,
		Name:      item.Name,
		IsActive:  item.IsActive,
		Value:     item.Value,
		Category:  gen.Category(item.Category),
		Tags:      item.Tags,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if item.Description != "" {
		resp.Description = &item.Description
	}
	if len(item.Metadata) > 0 {
		resp.Metadata = &item.Metadata
	}
	return resp
}
