// Package repo contains all database access logic for the item catalog API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nward/catalog-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ItemRepo defines the persistence operations for Items.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ItemRepo interface {
	// Create inserts a new item and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	// Returns domain.ErrConflict if the name is already taken.
	Create(ctx context.Context, item domain.Item) (domain.Item, error)

	// GetByID retrieves a single item by its primary key.
	// Returns domain.ErrNotFound if no item with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Item, error)

	// List returns one page of items matching the filter, ordered by id
	// ascending, plus the total count over the filtered set before paging.
	List(ctx context.Context, f domain.ItemFilter, p domain.PaginationParams) ([]domain.Item, int64, error)

	// All returns every item ordered by id ascending. Used by the export.
	All(ctx context.Context) ([]domain.Item, error)

	// Update overwrites all mutable fields of an existing item and returns
	// the updated record. created_at is left untouched; updated_at is set
	// to now() by the query. Returns domain.ErrNotFound if the id does not
	// exist and domain.ErrConflict if the new name is already taken.
	Update(ctx context.Context, item domain.Item) (domain.Item, error)

	// Delete removes an item by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether an item with the given ID exists, without
	// fetching the record.
	Exists(ctx context.Context, id int64) (bool, error)

	// NameTaken reports whether any item other than excludeID already uses
	// the given name. Pass excludeID=0 when creating (ids start at 1).
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
}

// itemColumns is the SELECT list shared by every query that scans a full item.
const itemColumns = `id, name, description, is_active, value, category, tags, metadata, created_at, updated_at`

// pgItemRepo is the Postgres implementation of ItemRepo.
type pgItemRepo struct {
	db db
}

// NewItemRepo constructs an ItemRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItemRepo(db db) ItemRepo {
	return &pgItemRepo{db: db}
}

// Create inserts a new item row and returns the full persisted record.
func (r *pgItemRepo) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		INSERT INTO items (name, description, is_active, value, category, tags, metadata)
		VALUES (@name, @description, @is_active, @value, @category, @tags, @metadata)
		RETURNING ` + itemColumns

	row := r.db.QueryRow(ctx, q, itemArgs(item))
	result, err := scanItem(row)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Create: %w", translateUnique(err))
	}
	return result, nil
}

// GetByID retrieves an item by primary key.
func (r *pgItemRepo) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	const q = `SELECT ` + itemColumns + ` FROM items WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanItem(row)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns one filtered page ordered by id ascending and the total count
// over the same predicate set. The count runs before LIMIT/OFFSET so it is
// independent of the requested page.
//
// Substring search uses ILIKE with LIKE metacharacters escaped, so input
// matches literally and case-insensitively by choice, not left to collation.
func (r *pgItemRepo) List(ctx context.Context, f domain.ItemFilter, p domain.PaginationParams) ([]domain.Item, int64, error) {
	where, args := buildFilter(f)

	var total int64
	countQ := `SELECT count(*) FROM items` + where
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ItemRepo.List: count: %w", err)
	}

	pageQ := `SELECT ` + itemColumns + ` FROM items` + where +
		` ORDER BY id LIMIT @limit OFFSET @offset`
	args["limit"] = p.Limit
	args["offset"] = p.Offset()

	items, err := r.queryItems(ctx, pageQ, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ItemRepo.List: %w", err)
	}
	return items, total, nil
}

// All returns every item ordered by id ascending.
func (r *pgItemRepo) All(ctx context.Context) ([]domain.Item, error) {
	const q = `SELECT ` + itemColumns + ` FROM items ORDER BY id`

	items, err := r.queryItems(ctx, q, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.All: %w", err)
	}
	return items, nil
}

// Update overwrites the mutable fields of an item and returns the updated record.
func (r *pgItemRepo) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		UPDATE items
		SET name        = @name,
		    description = @description,
		    is_active   = @is_active,
		    value       = @value,
		    category    = @category,
		    tags        = @tags,
		    metadata    = @metadata,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + itemColumns

	args := itemArgs(item)
	args["id"] = item.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanItem(row)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Update: %w", translateUnique(err))
	}
	return result, nil
}

// Delete removes an item by primary key.
func (r *pgItemRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM items WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// Exists reports whether an item with the given ID exists.
func (r *pgItemRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM items WHERE id = @id)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.ItemRepo.Exists: %w", err)
	}
	return exists, nil
}

// NameTaken reports whether the name is used by any item other than excludeID.
// The comparison is exact (case-sensitive), matching the UNIQUE constraint.
func (r *pgItemRepo) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM items WHERE name = @name AND id <> @exclude_id)`

	var taken bool
	args := pgx.NamedArgs{"name": name, "exclude_id": excludeID}
	if err := r.db.QueryRow(ctx, q, args).Scan(&taken); err != nil {
		return false, fmt.Errorf("repo.ItemRepo.NameTaken: %w", err)
	}
	return taken, nil
}

// queryItems runs a multi-row item query and scans every row.
func (r *pgItemRepo) queryItems(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}

// likeEscaper neutralizes LIKE metacharacters in search input so it matches
// literally. Postgres treats backslash as the default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildFilter assembles the WHERE clause and named args for an ItemFilter.
// Returns "" and empty args when no filter is set. Filters are ANDed.
func buildFilter(f domain.ItemFilter) (string, pgx.NamedArgs) {
	var conds []string
	args := pgx.NamedArgs{}

	if f.Search != "" {
		conds = append(conds, `(name ILIKE '%' || @search || '%' OR description ILIKE '%' || @search || '%')`)
		args["search"] = likeEscaper.Replace(f.Search)
	}
	if f.IsActive != nil {
		conds = append(conds, `is_active = @is_active`)
		args["is_active"] = *f.IsActive
	}
	if f.Category != nil {
		conds = append(conds, `category = @category`)
		args["category"] = string(*f.Category)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// itemArgs maps the client-settable item fields to named query args.
// Tags and metadata columns are NOT NULL, so nil values are normalized to
// their empty forms here rather than relying on every caller to do it.
func itemArgs(item domain.Item) pgx.NamedArgs {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	metadata := item.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return pgx.NamedArgs{
		"name":        item.Name,
		"description": item.Description,
		"is_active":   item.IsActive,
		"value":       item.Value, // nil becomes NULL
		"category":    string(item.Category),
		"tags":        tags,
		"metadata":    metadata,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanItem to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanItem maps a single database row into a domain.Item.
func scanItem(s scanner) (domain.Item, error) {
	var (
		i        domain.Item
		category string
	)

	err := s.Scan(&i.ID, &i.Name, &i.Description, &i.IsActive, &i.Value,
		&category, &i.Tags, &i.Metadata, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, domain.ErrNotFound
		}
		return domain.Item{}, err
	}

	i.Category = domain.Category(category)
	return i, nil
}

// translateUnique converts a Postgres unique-violation (SQLSTATE 23505) into
// domain.ErrConflict. This is the hard backstop behind the service-level
// name pre-check: two concurrent creates can both pass the pre-check, but
// only one insert survives the constraint.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrConflict
	}
	return err
}
