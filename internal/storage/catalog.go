// internal/storage/catalog.go
package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hackeed/hackeed-backend/internal/database"
	"github.com/hackeed/hackeed-backend/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("variant option not found")
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListActive returns every purchasable product, newest first.
func (r *CatalogRepository) ListActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// ListAll returns every product row including inactive ones, for the
// diagnostics endpoint.
func (r *CatalogRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// ActiveByIDs fetches the active rows for the given product ids. The
// caller compares the result count against the distinct id count to
// detect vanished or deactivated products.
func (r *CatalogRepository) ActiveByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("id IN ? AND active = ?", ids, true).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// DecrementStock applies the scalar-stock path as a single clamped
// relational update, which is safe under concurrent execution.
func (r *CatalogRepository) DecrementStock(ctx context.Context, productID string, qty int64) error {
	result := r.db.WithContext(ctx).
		Exec("UPDATE products SET stock = GREATEST(stock - ?, 0), updated_at = NOW() WHERE id = ?", qty, productID)
	if result.Error != nil {
		return fmt.Errorf("failed to decrement stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DecrementVariantStock decrements the matched option's stock floored
// at zero and writes the whole variant group back. The product row is
// locked for the duration of the transaction so concurrent deliveries
// for the same product serialize instead of losing updates.
func (r *CatalogRepository) DecrementVariantStock(ctx context.Context, productID, optionKey string, qty int64) error {
	return database.WithTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var product models.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", productID).
			First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load product for variant update: %w", err)
		}

		if product.Variants == nil || len(product.Variants.Options) == 0 {
			return ErrVariantNotFound
		}

		opt := product.Variants.FindOption(optionKey, optionKey)
		if opt == nil {
			return ErrVariantNotFound
		}

		var current int64
		if opt.Stock != nil {
			current = *opt.Stock
		}
		newStock := current - qty
		if newStock < 0 {
			newStock = 0
		}
		inStock := newStock > 0
		opt.Stock = &newStock
		opt.InStock = &inStock

		if err := tx.Model(&models.Product{}).
			Where("id = ?", productID).
			Update("variants", product.Variants).Error; err != nil {
			return fmt.Errorf("failed to persist variant stock: %w", err)
		}
		return nil
	})
}
