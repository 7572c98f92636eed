package repositories

import (
	"errors"
	"fmt"
	"time"

	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productRecord is the table row for a product. Seq preserves insertion order.
type productRecord struct {
	Seq         uint   `gorm:"primaryKey;autoIncrement"`
	ProductID   string `gorm:"column:product_id;uniqueIndex;type:varchar(36)"`
	Name        string
	Description string
	Price       float64
	Category    string `gorm:"index"`
	InStock     bool
	ModifiedAt  *time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

func (rec productRecord) toModel() models.Product {
	return models.Product{
		ID:          rec.ProductID,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       rec.Price,
		Category:    rec.Category,
		InStock:     rec.InStock,
		UpdatedAt:   rec.ModifiedAt,
	}
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db:  db,
		now: time.Now,
	}
}

// AutoMigrate creates or updates the products table.
func (r *GORMProductRepository) AutoMigrate() error {
	if err := r.db.AutoMigrate(&productRecord{}); err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}
	return nil
}

// GetAll retrieves all products in insertion order.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var records []productRecord
	if err := r.db.Order("seq").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, rec.toModel())
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	rec, err := r.find(id)
	if err != nil {
		return nil, err
	}
	product := rec.toModel()
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	rec := productRecord{
		ProductID:   product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		InStock:     product.InStock,
		ModifiedAt:  product.UpdatedAt,
	}
	if err := r.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update merges input over an existing product and stamps UpdatedAt.
func (r *GORMProductRepository) Update(id string, input models.ProductInput) (*models.Product, error) {
	var updated models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var rec productRecord
		if err := tx.First(&rec, "product_id = ?", id).Error; err != nil {
			return lookupError(id, err)
		}
		product := rec.toModel()
		applyInput(&product, input)
		stamp := nextUpdatedAt(r.now(), rec.ModifiedAt)

		rec.Name = product.Name
		rec.Description = product.Description
		rec.Price = product.Price
		rec.Category = product.Category
		rec.InStock = product.InStock
		rec.ModifiedAt = &stamp
		if err := tx.Save(&rec).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		updated = rec.toModel()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes a product by its ID and returns the removed record.
func (r *GORMProductRepository) Delete(id string) (*models.Product, error) {
	var removed models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var rec productRecord
		if err := tx.First(&rec, "product_id = ?", id).Error; err != nil {
			return lookupError(id, err)
		}
		if err := tx.Delete(&rec).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		removed = rec.toModel()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}

func (r *GORMProductRepository) find(id string) (*productRecord, error) {
	var rec productRecord
	if err := r.db.First(&rec, "product_id = ?", id).Error; err != nil {
		return nil, lookupError(id, err)
	}
	return &rec, nil
}

func lookupError(id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	return fmt.Errorf("failed to get product by ID %s: %w", id, err)
}
