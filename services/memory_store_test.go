package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cake-shop/models"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 5; i++ {
		p, err := s.Create(ctx, models.ProductFields{Name: "Медовик", Price: 5500, Stock: 4})
		require.NoError(t, err)
		assert.Equal(t, lastID+1, p.ID)
		lastID = p.ID
	}
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), 42)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p, err := s.Create(ctx, models.ProductFields{Name: "Медовик", Price: 5500, Stock: 4})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, p.ID))

	_, err = s.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, s.Delete(ctx, p.ID), ErrProductNotFound)
}

func TestUpdateReplacesFieldsAndKeepsID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.Create(ctx, models.ProductFields{
		Name:        "Медовик",
		Description: "Торт с медом",
		Price:       5500,
		Stock:       4,
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, models.ProductFields{
		Name:  "Наполеон",
		Price: 4800,
		Stock: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Наполеон", updated.Name)
	assert.Empty(t, updated.Description)
	assert.Equal(t, 4800.0, updated.Price)
	assert.Equal(t, int64(7), updated.Stock)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Update(context.Background(), 99, models.ProductFields{Name: "Медовик"})
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestListReturnsInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	names := []string{"Медовик", "Наполеон", "Прага"}
	for _, name := range names {
		_, err := s.Create(ctx, models.ProductFields{Name: name, Price: 1000, Stock: 1})
		require.NoError(t, err)
	}

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(names))
	for i, name := range names {
		assert.Equal(t, name, products[i].Name)
		assert.Equal(t, int64(i+1), products[i].ID)
	}
}

func TestConcurrentCreatesYieldDistinctIDs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := s.Create(ctx, models.ProductFields{Name: "Медовик", Price: 5500, Stock: 4})
			if err == nil {
				ids <- p.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}

func TestSeedCatalogOnlyFillsEmptyStore(t *testing.T) {
	s := NewMemoryStore()
	InitCatalog(s)
	ctx := context.Background()

	require.NoError(t, SeedCatalog(ctx))
	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Медовик", products[0].Name)

	// Seeding again must not duplicate
	require.NoError(t, SeedCatalog(ctx))
	products, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
