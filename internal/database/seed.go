// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/hackeed/hackeed-backend/internal/models"
)

func intPtr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool  { return &v }

// SeedSampleProducts inserts the demo catalog when the products table
// is empty, so the store works before real data is loaded. Two simple
// products, one with color variants, one with size variants.
func SeedSampleProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding sample products...")

	products := []models.Product{
		{
			SKU:         "PROD-001",
			Name:        "Sample Product 1",
			Description: "This is a sample product description.",
			LongDesc:    "This is a longer description for Sample Product 1.",
			Img:         "/images/product-1.jpg",
			Images:      models.StringList{"/images/product-1.jpg", "/images/product-1-1.jpg"},
			PriceCents:  2999,
			Stock:       50,
			Brand:       "Sample Brand",
			Category:    models.StringList{"electronics", "gadgets"},
			Features:    models.StringList{"High quality materials", "Long-lasting battery", "1 year warranty"},
			Active:      true,
		},
		{
			SKU:         "PROD-002",
			Name:        "Sample Product 2",
			Description: "Another sample product with variants.",
			LongDesc:    "Sample Product 2 comes in multiple colors, each with its own stock level.",
			Img:         "/images/product-2.jpg",
			Images:      models.StringList{"/images/product-2.jpg", "/images/product-2-1.jpg"},
			PriceCents:  4999,
			Stock:       0,
			Brand:       "Sample Brand",
			Category:    models.StringList{"electronics", "accessories"},
			Features:    models.StringList{"Available in multiple variants", "Premium materials"},
			Variants: &models.VariantGroup{
				Name:    "Variants",
				Default: "black",
				Options: []models.VariantOption{
					{ID: "black", Name: "Black", Price: 49.99, Stock: intPtr(15), InStock: boolPtr(true), Selected: map[string]string{"color": "black"}},
					{ID: "white", Name: "White", Price: 49.99, Stock: intPtr(10), InStock: boolPtr(true), Selected: map[string]string{"color": "white"}},
					{ID: "red", Name: "Red", Price: 49.99, Stock: intPtr(0), InStock: boolPtr(false), Selected: map[string]string{"color": "red"}},
				},
			},
			Active: true,
		},
		{
			SKU:         "PROD-003",
			Name:        "Sample Product 3",
			Description: "A third sample product without variants.",
			LongDesc:    "This is a longer description for Sample Product 3.",
			Img:         "/images/product-3.jpg",
			Images:      models.StringList{"/images/product-3.jpg"},
			PriceCents:  1999,
			Stock:       25,
			Brand:       "Sample Brand",
			Category:    models.StringList{"accessories"},
			Features:    models.StringList{"Compact design", "Free shipping"},
			Active:      true,
		},
		{
			SKU:         "PROD-004",
			Name:        "Sample Product 4",
			Description: "A sample product with size variants.",
			LongDesc:    "Sample Product 4 is available in sizes S to XL.",
			Img:         "/images/product-4.jpg",
			Images:      models.StringList{"/images/product-4.jpg"},
			PriceCents:  3499,
			Stock:       0,
			Brand:       "Sample Brand",
			Category:    models.StringList{"apparel"},
			Features:    models.StringList{"Soft fabric", "Machine washable"},
			Variants: &models.VariantGroup{
				Name:    "Size",
				Default: "m",
				Options: []models.VariantOption{
					{ID: "s", Name: "S", Price: 34.99, Stock: intPtr(5), InStock: boolPtr(true), Selected: map[string]string{"size": "s"}},
					{ID: "m", Name: "M", Price: 34.99, Stock: intPtr(8), InStock: boolPtr(true), Selected: map[string]string{"size": "m"}},
					{ID: "l", Name: "L", Price: 34.99, Stock: intPtr(3), InStock: boolPtr(true), Selected: map[string]string{"size": "l"}},
					{ID: "xl", Name: "XL", Price: 36.99, Stock: intPtr(0), InStock: boolPtr(false), Selected: map[string]string{"size": "xl"}},
				},
			},
			Active: true,
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Printf("Seeded %d sample products", len(products))
	return nil
}
