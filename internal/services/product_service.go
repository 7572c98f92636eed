package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"catalog/internal/apperror"
	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/sirupsen/logrus"
)

// EventPublisher receives product mutations after they are stored.
type EventPublisher interface {
	PublishProductEvent(event models.ProductEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// ListProducts filters the catalog and returns the requested page.
func (s *ProductService) ListProducts(q models.ListQuery) (*models.ProductPage, error) {
	defaults := models.DefaultListQuery()
	if q.Page < 1 {
		q.Page = defaults.Page
	}
	if q.Limit < 1 {
		q.Limit = defaults.Limit
	}
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, apperror.Internal("Internal Server Error", err)
	}

	filtered := make([]models.Product, 0, len(products))
	search := strings.ToLower(q.Search)
	for _, p := range products {
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if q.InStock != "" && p.InStock != strings.EqualFold(q.InStock, "true") {
			continue
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)
	totalPages := total / q.Limit
	if total%q.Limit != 0 {
		totalPages++
	}
	// Only pages up to totalPages are sliced, so start < total and nothing overflows.
	page := []models.Product{}
	if q.Page <= totalPages {
		start := (q.Page - 1) * q.Limit
		end := total
		if q.Limit < total-start {
			end = start + q.Limit
		}
		page = filtered[start:end]
	}

	return &models.ProductPage{
		Products: page,
		Pagination: models.Pagination{
			CurrentPage:     q.Page,
			TotalProducts:   total,
			TotalPages:      totalPages,
			ProductsPerPage: q.Limit,
			HasNextPage:     q.Page < totalPages,
			HasPreviousPage: q.Page > 1,
		},
	}, nil
}

// SearchProducts matches q against name or description, ignoring case.
func (s *ProductService) SearchProducts(q models.SearchQuery) ([]models.Product, error) {
	if q.Q == "" {
		return nil, apperror.Validation(`Search query parameter "q" is required`)
	}
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, apperror.Internal("Internal Server Error", err)
	}

	term := strings.ToLower(q.Q)
	results := []models.Product{}
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

// ProductStats summarizes stock, categories and prices.
func (s *ProductService) ProductStats() (*models.ProductStats, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, apperror.Internal("Internal Server Error", err)
	}

	stats := &models.ProductStats{
		TotalProducts:     len(products),
		CategoryBreakdown: make(map[string]int),
	}
	if len(products) == 0 {
		return stats, nil
	}

	var sum float64
	stats.PriceRange = models.PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products {
		if p.InStock {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
		stats.CategoryBreakdown[p.Category]++
		sum += p.Price
		stats.PriceRange.Min = math.Min(stats.PriceRange.Min, p.Price)
		stats.PriceRange.Max = math.Max(stats.PriceRange.Max, p.Price)
	}
	stats.AveragePrice = math.Round(sum/float64(len(products))*100) / 100
	return stats, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}
	return product, nil
}

// CreateProduct stores a new product. InStock defaults to true.
func (s *ProductService) CreateProduct(input models.ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		InStock:  true,
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}

	if err := s.repo.Create(product); err != nil {
		return nil, apperror.Internal("Internal Server Error", err)
	}
	s.publish(models.ProductCreated, *product)
	return product, nil
}

// UpdateProduct merges input over the product with the given ID.
func (s *ProductService) UpdateProduct(id string, input models.ProductInput) (*models.Product, error) {
	product, err := s.repo.Update(id, input)
	if err != nil {
		return nil, translate(err)
	}
	s.publish(models.ProductUpdated, *product)
	return product, nil
}

// DeleteProduct removes the product with the given ID and returns it.
func (s *ProductService) DeleteProduct(id string) (*models.Product, error) {
	product, err := s.repo.Delete(id)
	if err != nil {
		return nil, translate(err)
	}
	s.publish(models.ProductDeleted, *product)
	return product, nil
}

func (s *ProductService) publish(eventType models.ProductEventType, product models.Product) {
	if s.events == nil {
		return
	}
	event := models.ProductEvent{Type: eventType, Product: product, OccurredAt: time.Now().UTC()}
	if err := s.events.PublishProductEvent(event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":      eventType,
			"product_id": product.ID,
		}).Warn("Failed to publish product event")
	}
}

func translate(err error) error {
	if errors.Is(err, repositories.ErrProductNotFound) {
		return apperror.NotFound("Product not found")
	}
	return apperror.Internal("Internal Server Error", err)
}
