// Package service contains the business logic for the item catalog API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nward/catalog-api/internal/domain"
	"github.com/nward/catalog-api/internal/repo"
)

// maxNameLen and maxDescriptionLen bound the client-settable text fields,
// in characters. The database enforces the same limits via CHECK constraints.
const (
	maxNameLen        = 100
	maxDescriptionLen = 500
)

// ItemService implements business logic for Item operations.
// Its main responsibility beyond orchestration is name uniqueness: writes
// pre-check the name for a friendly conflict error, while the database
// UNIQUE constraint remains the authoritative enforcement (the pre-check
// and the write are not atomic).
type ItemService struct {
	items repo.ItemRepo
}

// NewItemService constructs an ItemService backed by the provided ItemRepo.
func NewItemService(items repo.ItemRepo) *ItemService {
	return &ItemService{items: items}
}

// Create validates and persists a new item.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrConflict if an item with the same name already exists.
// The database assigns the id and both timestamps; client-supplied values
// for those fields are ignored.
func (s *ItemService) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	if err := validateItem(item); err != nil {
		return domain.Item{}, err
	}

	taken, err := s.items.NameTaken(ctx, item.Name, 0)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Create: %w", err)
	}
	if taken {
		return domain.Item{}, fmt.Errorf("%w: an item named %q already exists", domain.ErrConflict, item.Name)
	}

	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single item by ID.
// Returns domain.ErrNotFound if no item with that ID exists.
func (s *ItemService) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	result, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of items matching the filter, ordered by id
// ascending, plus the total count over the filtered set before paging.
// A page past the end of the result set yields an empty slice, not an error.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItemService) List(ctx context.Context, f domain.ItemFilter, p domain.PaginationParams) ([]domain.Item, int64, error) {
	items, total, err := s.items.List(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItemService.List: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, total, nil
}

// Update validates and persists changes to an existing item. Every mutable
// field is replaced wholesale from the input — there are no patch semantics,
// so a zero-value field clears the stored one. created_at is untouched and
// updated_at is refreshed by the store.
//
// Returns domain.ErrNotFound if the id does not exist (no upsert),
// domain.ErrValidation for invalid input, and domain.ErrConflict when the
// name is being changed to one another item already uses. Keeping the
// current name never conflicts.
func (s *ItemService) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	existing, err := s.items.GetByID(ctx, item.ID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Update: %w", err)
	}

	if err := validateItem(item); err != nil {
		return domain.Item{}, err
	}

	if item.Name != existing.Name {
		taken, err := s.items.NameTaken(ctx, item.Name, item.ID)
		if err != nil {
			return domain.Item{}, fmt.Errorf("service.ItemService.Update: %w", err)
		}
		if taken {
			return domain.Item{}, fmt.Errorf("%w: an item named %q already exists", domain.ErrConflict, item.Name)
		}
	}

	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an item by ID. The delete is hard — no tombstone remains.
// Returns domain.ErrNotFound if there was nothing to delete.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ItemService.Delete: %w", err)
	}
	return nil
}

// Exists reports whether an item with the given ID exists, without fetching it.
func (s *ItemService) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := s.items.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("service.ItemService.Exists: %w", err)
	}
	return exists, nil
}

// validateItem enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected) and at
//     most 100 characters.
//   - Description must be at most 500 characters.
//   - Value, if set, must not be negative.
//   - Category must be one of the known values.
func validateItem(item domain.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(item.Name) > maxNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", domain.ErrValidation, maxNameLen)
	}
	if utf8.RuneCountInString(item.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", domain.ErrValidation, maxDescriptionLen)
	}
	if item.Value != nil && *item.Value < 0 {
		return fmt.Errorf("%w: value must not be negative", domain.ErrValidation)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, item.Category)
	}
	return nil
}
