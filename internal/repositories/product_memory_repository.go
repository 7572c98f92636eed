package repositories

import (
	"fmt"
	"sync"
	"time"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
type MemoryProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
	now      func() time.Time
}

// NewMemoryProductRepository creates a new, empty MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{now: time.Now}
}

// GetAll returns a copy of all products in insertion order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, len(r.products))
	copy(productList, r.products)
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	product := r.products[i]
	return &product, nil
}

// Create appends a new product, assigning an ID when none is set.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if r.indexOf(product.ID) >= 0 {
		return fmt.Errorf("product with ID %s already exists", product.ID)
	}
	r.products = append(r.products, *product)
	return nil
}

// Update merges input over an existing product in place and stamps UpdatedAt.
func (r *MemoryProductRepository) Update(id string, input models.ProductInput) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("product with ID %s not found for update: %w", id, ErrProductNotFound)
	}
	product := &r.products[i]
	applyInput(product, input)
	stamp := nextUpdatedAt(r.now(), product.UpdatedAt)
	product.UpdatedAt = &stamp

	updated := *product
	return &updated, nil
}

// Delete removes a product by its ID and returns it.
func (r *MemoryProductRepository) Delete(id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("product with ID %s not found for deletion: %w", id, ErrProductNotFound)
	}
	removed := r.products[i]
	r.products = append(r.products[:i], r.products[i+1:]...)
	return &removed, nil
}

// indexOf must be called with r.mu held.
func (r *MemoryProductRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

// nextUpdatedAt returns now, or just after previous if the clock has not moved past it.
func nextUpdatedAt(now time.Time, previous *time.Time) time.Time {
	now = now.UTC()
	if previous != nil && !now.After(*previous) {
		return previous.Add(time.Nanosecond)
	}
	return now
}
