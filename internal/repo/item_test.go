package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nward/catalog-api/internal/domain"
	"github.com/nward/catalog-api/internal/repo"
	"github.com/nward/catalog-api/testutil"
)

// newTestRepo opens a transaction against the test database and returns an
// ItemRepo backed by that transaction. The transaction is automatically rolled
// back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set and all migrations to be applied
// (starting the API once against the test database applies them).
func newTestRepo(t *testing.T) repo.ItemRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewItemRepo(tx)
}

// itemFixture returns a domain.Item with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func itemFixture(name string) domain.Item {
	value := 19.99
	return domain.Item{
		Name:        name,
		Description: "Test description",
		IsActive:    true,
		Value:       &value,
		Category:    domain.CategoryStandard,
		Tags:        []string{"test"},
		Metadata:    map[string]any{"origin": "fixture"},
	}
}

func TestItemRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := itemFixture("Create Test Item")
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Positive(t, got.ID, "ID should be DB-generated")
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Description, got.Description)
	assert.True(t, got.IsActive)
	require.NotNil(t, got.Value)
	assert.InDelta(t, 19.99, *got.Value, 0.001)
	assert.Equal(t, domain.CategoryStandard, got.Category)
	assert.Equal(t, []string{"test"}, got.Tags)
	assert.Equal(t, "fixture", got.Metadata["origin"])
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestItemRepo_Create_NilOptionals(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := itemFixture("Nil Optionals Item")
	input.Value = nil
	input.Tags = nil
	input.Metadata = nil

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, got.Value, "Value should stay NULL when not provided")
	assert.Equal(t, []string{}, got.Tags, "tags column defaults to an empty array")
	assert.Empty(t, got.Metadata, "metadata column defaults to an empty object")
}

func TestItemRepo_Create_DuplicateName(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, itemFixture("Duplicate Name Item"))
	require.NoError(t, err)

	_, err = r.Create(ctx, itemFixture("Duplicate Name Item"))
	assert.ErrorIs(t, err, domain.ErrConflict, "unique violation maps to ErrConflict")
}

func TestItemRepo_GetByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, itemFixture("GetByID Item"))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
}

func TestItemRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.GetByID(ctx, 999999999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemRepo_List(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	inactive := itemFixture("List Apple")
	inactive.IsActive = false
	inactive.Category = domain.CategoryPremium

	for _, item := range []domain.Item{
		itemFixture("List Banana"),
		inactive,
		itemFixture("List Cherry Pie"),
	} {
		_, err := r.Create(ctx, item)
		require.NoError(t, err)
	}

	page := domain.PaginationParams{Page: 1, Limit: 20}

	t.Run("no filter returns everything with total", func(t *testing.T) {
		items, total, err := r.List(ctx, domain.ItemFilter{}, page)

		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, items, 3)
		assert.True(t, items[0].ID < items[1].ID && items[1].ID < items[2].ID,
			"items ordered by id ascending")
	})

	t.Run("search matches name substring case-insensitively", func(t *testing.T) {
		items, total, err := r.List(ctx, domain.ItemFilter{Search: "cherry"}, page)

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "List Cherry Pie", items[0].Name)
	})

	t.Run("search matches description", func(t *testing.T) {
		_, total, err := r.List(ctx, domain.ItemFilter{Search: "test desc"}, page)

		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
	})

	t.Run("is_active filter", func(t *testing.T) {
		active := false
		items, total, err := r.List(ctx, domain.ItemFilter{IsActive: &active}, page)

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "List Apple", items[0].Name)
	})

	t.Run("category filter", func(t *testing.T) {
		premium := domain.CategoryPremium
		items, total, err := r.List(ctx, domain.ItemFilter{Category: &premium}, page)

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, domain.CategoryPremium, items[0].Category)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		active := true
		premium := domain.CategoryPremium
		_, total, err := r.List(ctx, domain.ItemFilter{IsActive: &active, Category: &premium}, page)

		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
	})

	t.Run("total counts the whole filtered set, not the page", func(t *testing.T) {
		items, total, err := r.List(ctx, domain.ItemFilter{}, domain.PaginationParams{Page: 1, Limit: 2})

		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, items, 2)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		items, total, err := r.List(ctx, domain.ItemFilter{}, domain.PaginationParams{Page: 50, Limit: 20})

		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

// TestItemRepo_List_SearchMatchesLiterally verifies that LIKE metacharacters
// in the search term match only their literal occurrences.
func TestItemRepo_List_SearchMatchesLiterally(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"100% Cotton", "100 Units", "Wool Blend"} {
		_, err := r.Create(ctx, itemFixture(name))
		require.NoError(t, err)
	}

	page := domain.PaginationParams{Page: 1, Limit: 20}

	t.Run("percent is literal", func(t *testing.T) {
		items, total, err := r.List(ctx, domain.ItemFilter{Search: "100%"}, page)

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "100% Cotton", items[0].Name)
	})

	t.Run("bare wildcard is not match-all", func(t *testing.T) {
		items, total, err := r.List(ctx, domain.ItemFilter{Search: "%"}, page)

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "100% Cotton", items[0].Name)
	})

	t.Run("underscore is literal", func(t *testing.T) {
		_, total, err := r.List(ctx, domain.ItemFilter{Search: "100_"}, page)

		require.NoError(t, err)
		assert.Zero(t, total, "no name or description contains a literal underscore")
	})
}

func TestItemRepo_All(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"All First", "All Second"} {
		_, err := r.Create(ctx, itemFixture(name))
		require.NoError(t, err)
	}

	items, err := r.All(ctx)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].ID < items[1].ID, "items ordered by id ascending")
}

func TestItemRepo_Update(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, itemFixture("Update Original"))
	require.NoError(t, err)

	updated := created
	updated.Name = "Update Renamed"
	updated.Description = "New description"
	updated.IsActive = false
	updated.Value = nil
	updated.Category = domain.CategoryEconomy
	updated.Tags = []string{"changed"}
	updated.Metadata = map[string]any{"revision": "2"}

	got, err := r.Update(ctx, updated)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Update Renamed", got.Name)
	assert.Equal(t, "New description", got.Description)
	assert.False(t, got.IsActive)
	assert.Nil(t, got.Value, "Value replaced with NULL")
	assert.Equal(t, domain.CategoryEconomy, got.Category)
	assert.Equal(t, []string{"changed"}, got.Tags)
	assert.Equal(t, "2", got.Metadata["revision"])
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt), "CreatedAt untouched by update")
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt) || got.UpdatedAt.Equal(created.UpdatedAt),
		"UpdatedAt refreshed by update")
}

func TestItemRepo_Update_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	missing := itemFixture("Update Missing")
	missing.ID = 999999999

	_, err := r.Update(ctx, missing)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemRepo_Update_DuplicateName(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, itemFixture("Update Taken Name"))
	require.NoError(t, err)

	second, err := r.Create(ctx, itemFixture("Update Second Item"))
	require.NoError(t, err)

	second.Name = "Update Taken Name"
	_, err = r.Update(ctx, second)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestItemRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, itemFixture("Delete Item"))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	exists, err := r.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, exists, "deleted item no longer exists")
}

func TestItemRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	err := r.Delete(ctx, 999999999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemRepo_Exists(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, itemFixture("Exists Item"))
	require.NoError(t, err)

	exists, err := r.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.Exists(ctx, 999999999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestItemRepo_NameTaken(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, itemFixture("NameTaken Item"))
	require.NoError(t, err)

	t.Run("taken by another item", func(t *testing.T) {
		taken, err := r.NameTaken(ctx, "NameTaken Item", 0)
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("excluding the owner itself", func(t *testing.T) {
		taken, err := r.NameTaken(ctx, "NameTaken Item", created.ID)
		require.NoError(t, err)
		assert.False(t, taken, "an item keeping its own name is not a conflict")
	})

	t.Run("free name", func(t *testing.T) {
		taken, err := r.NameTaken(ctx, "Some Unused Name", 0)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("comparison is exact, not case-insensitive", func(t *testing.T) {
		taken, err := r.NameTaken(ctx, "nametaken item", 0)
		require.NoError(t, err)
		assert.False(t, taken)
	})
}
