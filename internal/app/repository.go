package app

import (
	"fmt"

	"catalog/internal/config"
	"catalog/internal/models"
	"catalog/internal/repositories"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewRepository opens the configured product store and seeds it with the
// startup catalog when it is empty.
func NewRepository(cfg config.Config) (repositories.ProductRepository, error) {
	var repo repositories.ProductRepository
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		gormRepo := repositories.NewGORMProductRepository(db)
		if err := gormRepo.AutoMigrate(); err != nil {
			return nil, err
		}
		repo = gormRepo
	case config.StoreMemory, "":
		repo = repositories.NewMemoryProductRepository()
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	existing, err := repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return repo, nil
	}
	if err := repositories.Seed(repo, models.SeedProducts()); err != nil {
		return nil, fmt.Errorf("failed to seed products: %w", err)
	}
	return repo, nil
}
