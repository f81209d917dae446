package services

import (
	"context"
	"sync"

	"cake-shop/models"
)

// MemoryStore keeps the catalog in process memory. The lock covers the whole
// read-max-id-then-insert sequence, so concurrent creates never hand out the
// same id.
type MemoryStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: make([]models.Product, 0, 8)}
}

func (s *MemoryStore) List(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id int64) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (s *MemoryStore) Create(_ context.Context, fields models.ProductFields) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	product := models.Product{
		ID:          maxID + 1,
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		Stock:       fields.Stock,
	}
	s.products = append(s.products, product)
	return product, nil
}

func (s *MemoryStore) Update(_ context.Context, id int64, fields models.ProductFields) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			updated := models.Product{
				ID:          id,
				Name:        fields.Name,
				Description: fields.Description,
				Price:       fields.Price,
				Stock:       fields.Stock,
			}
			s.products[i] = updated
			return updated, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}
