// internal/models/product.go
package models

import (
	"database/sql/driver"
	"encoding/json"
)

// LegacyInStockQuantity is the implied available quantity for variant
// options that predate numeric stock and only carry the inStock flag.
const LegacyInStockQuantity = 999

type Product struct {
	BaseModel
	SKU         string        `json:"sku" gorm:"size:100;uniqueIndex;not null"`
	Name        string        `json:"name" gorm:"size:255;not null"`
	Description string        `json:"description" gorm:"type:text"`
	LongDesc    string        `json:"long_desc" gorm:"type:text"`
	Img         string        `json:"img" gorm:"size:500"`
	Images      StringList    `json:"images" gorm:"type:jsonb"`
	PriceCents  int64         `json:"price_cents" gorm:"not null"`
	Stock       int64         `json:"stock" gorm:"default:0"`
	Brand       string        `json:"brand" gorm:"size:100"`
	Category    StringList    `json:"category" gorm:"type:jsonb"`
	Features    StringList    `json:"features" gorm:"type:jsonb"`
	Variants    *VariantGroup `json:"variants,omitempty" gorm:"type:jsonb"`
	Active      bool          `json:"active" gorm:"default:true;index"`
}

// VariantGroup is the embedded variant configuration of a product. A
// product either has one (and the selected option governs price and
// availability) or has none (and the scalar columns govern). There is
// no partially variant-driven product.
type VariantGroup struct {
	Name    string          `json:"name"`
	Default string          `json:"default"`
	Options []VariantOption `json:"options"`
}

// VariantOption carries its own price and stock, independent of the
// parent product. Stock is authoritative when present; InStock is the
// legacy fallback for records that predate numeric stock.
type VariantOption struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Price    float64           `json:"price"`
	Stock    *int64            `json:"stock,omitempty"`
	InStock  *bool             `json:"inStock,omitempty"`
	Selected map[string]string `json:"selected,omitempty"`
	Features []string          `json:"features,omitempty"`
}

func (g VariantGroup) Value() (driver.Value, error) {
	return json.Marshal(g)
}

func (g *VariantGroup) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}

	return json.Unmarshal(bytes, g)
}

// FindOption locates a variant option by id, falling back to name so a
// cart holding stale option ids still resolves. Returns nil when the
// option no longer exists in the group.
func (g *VariantGroup) FindOption(id, name string) *VariantOption {
	if g == nil {
		return nil
	}
	if id != "" {
		for i := range g.Options {
			if g.Options[i].ID == id {
				return &g.Options[i]
			}
		}
	}
	if name != "" {
		for i := range g.Options {
			if g.Options[i].Name == name {
				return &g.Options[i]
			}
		}
	}
	return nil
}

// AvailableQuantity resolves the option's effective stock: numeric
// stock when defined, otherwise the legacy inStock flag mapped to a
// sentinel quantity.
func (o *VariantOption) AvailableQuantity() int64 {
	if o.Stock != nil {
		return *o.Stock
	}
	if o.InStock != nil && *o.InStock {
		return LegacyInStockQuantity
	}
	return 0
}

func (o *VariantOption) Available() bool {
	return o.AvailableQuantity() > 0
}
