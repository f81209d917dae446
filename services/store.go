package services

import (
	"context"
	"errors"
	"log/slog"

	"cake-shop/models"
)

// ErrProductNotFound is returned by store operations addressing an id that
// has no record.
var ErrProductNotFound = errors.New("product not found")

// CatalogStore is the storage contract shared by both backends. Mutations
// are serialized per store instance so id assignment stays max existing + 1
// under concurrent creates.
type CatalogStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, fields models.ProductFields) (models.Product, error)
	Update(ctx context.Context, id int64, fields models.ProductFields) (models.Product, error)
	Delete(ctx context.Context, id int64) error
}

var catalog CatalogStore

// InitCatalog installs the store backend selected at startup.
func InitCatalog(store CatalogStore) {
	catalog = store
}

// Catalog returns the active store backend.
func Catalog() CatalogStore {
	return catalog
}

// SeedCatalog loads the default cakes into an empty store.
func SeedCatalog(ctx context.Context) error {
	products, err := catalog.List(ctx)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	seed := []models.ProductFields{
		{Name: "Медовик", Description: "Торт с медом", Price: 5500.0, Stock: 4},
		{Name: "Молочная девочка", Description: "Нежный молочный торт", Price: 6000.0, Stock: 3},
	}
	for _, fields := range seed {
		if _, err := catalog.Create(ctx, fields); err != nil {
			return err
		}
	}

	slog.Info("Catalog seeded", "products", len(seed))
	return nil
}
