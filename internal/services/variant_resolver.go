// internal/services/variant_resolver.go
package services

import (
	"fmt"

	"github.com/hackeed/hackeed-backend/internal/models"
)

// ResolvedVariant is the effective purchase view of a product for a
// given variant selection.
type ResolvedVariant struct {
	EffectivePrice    float64
	DisplayName       string
	AvailableQuantity int64
	IsAvailable       bool
	// Option is the resolved variant option, nil for products without
	// a variant group or when the selection no longer resolves.
	Option *models.VariantOption
}

// ResolveVariant derives price, display name and availability for a
// product snapshot and a (possibly empty) selection of axis -> option
// id. When a variant group exists the selected option governs
// entirely; otherwise the parent scalar fields do. Pure function, no
// shared state; the snapshot is taken by value.
func ResolveVariant(product models.Product, selected map[string]string) ResolvedVariant {
	if product.Variants == nil {
		return ResolvedVariant{
			EffectivePrice:    float64(product.PriceCents) / 100,
			DisplayName:       product.Name,
			AvailableQuantity: product.Stock,
			IsAvailable:       product.Stock > 0,
		}
	}

	optionID := selected[product.Variants.Name]
	if optionID == "" {
		optionID = product.Variants.Default
	}

	option := findOptionByID(product.Variants, optionID)
	if option == nil {
		// The referenced option no longer exists in the group, e.g.
		// the catalog changed after the selection was cached.
		return ResolvedVariant{
			EffectivePrice: float64(product.PriceCents) / 100,
			DisplayName:    product.Name,
		}
	}

	qty := option.AvailableQuantity()
	return ResolvedVariant{
		EffectivePrice:    option.Price,
		DisplayName:       fmt.Sprintf("%s (%s)", product.Name, option.Name),
		AvailableQuantity: qty,
		IsAvailable:       qty > 0,
		Option:            option,
	}
}

// ProductInStock reports whether the product is purchasable at all:
// for variant products, at least one option with stock; otherwise the
// scalar stock.
func ProductInStock(product models.Product) bool {
	if product.Variants == nil {
		return product.Stock > 0
	}
	for i := range product.Variants.Options {
		if product.Variants.Options[i].Available() {
			return true
		}
	}
	return false
}

func findOptionByID(group *models.VariantGroup, id string) *models.VariantOption {
	for i := range group.Options {
		if group.Options[i].ID == id {
			return &group.Options[i]
		}
	}
	return nil
}
