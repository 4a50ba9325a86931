// Package domain contains the core data types for the item catalog API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Category is the closed set of item categories.
// The database enforces the same set via a CHECK constraint, so an unknown
// value can only originate from unvalidated input.
type Category string

// The four valid categories.
const (
	CategoryStandard  Category = "standard"
	CategoryPremium   Category = "premium"
	CategoryEconomy   Category = "economy"
	CategorySpecialty Category = "specialty"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStandard, CategoryPremium, CategoryEconomy, CategorySpecialty:
		return true
	}
	return false
}

// Item represents a single record in the catalog.
// Name is unique across the whole collection. ID, CreatedAt, and UpdatedAt
// are assigned by the database and never accepted from clients.
type Item struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	IsActive    bool           `json:"is_active"`
	Value       *float64       `json:"value,omitempty"` // nil when no value is set; never negative
	Category    Category       `json:"category"`
	Tags        []string       `json:"tags"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ItemFilter carries the optional list filters from the HTTP layer to the
// repo layer. Zero values mean "no filter"; set filters are combined with
// logical AND.
type ItemFilter struct {
	// Search restricts results to items whose name or description contains
	// the substring. Matching is case-insensitive (ILIKE).
	Search string
	// IsActive, when non-nil, is an exact match on the is_active flag.
	IsActive *bool
	// Category, when non-nil, is an exact match on the category.
	Category *Category
}
