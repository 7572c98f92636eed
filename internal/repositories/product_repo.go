package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrProductNotFound is returned (wrapped) when no product has the requested ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
// Implementations keep products in insertion order.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(id string, input models.ProductInput) (*models.Product, error)
	Delete(id string) (*models.Product, error)
}

// Seed inserts the given products in order.
func Seed(repo ProductRepository, products []models.Product) error {
	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			return err
		}
	}
	return nil
}

// applyInput merges input over product. Absent optional fields keep their value.
func applyInput(product *models.Product, input models.ProductInput) {
	product.Name = input.Name
	product.Price = input.Price
	product.Category = input.Category
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
}
