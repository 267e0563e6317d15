// internal/services/catalog_service.go
package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hackeed/hackeed-backend/internal/models"
)

// ProductLister is the read surface of the public catalog.
type ProductLister interface {
	ListActive(ctx context.Context) ([]models.Product, error)
}

type CatalogService struct {
	products ProductLister
}

func NewCatalogService(products ProductLister) *CatalogService {
	return &CatalogService{products: products}
}

// ProductView is the storefront-facing product shape. Prices are
// decimal units, stock is collapsed to a boolean, and variant options
// always carry a numeric stock.
type ProductView struct {
	ID        string            `json:"id"`
	SKU       string            `json:"sku"`
	Name      string            `json:"name"`
	Desc      string            `json:"desc"`
	LongDesc  string            `json:"longDesc"`
	Img       string            `json:"img"`
	Images    []string          `json:"images"`
	Price     float64           `json:"price"`
	Category  []string          `json:"category"`
	Brand     string            `json:"brand"`
	InStock   bool              `json:"inStock"`
	Features  []string          `json:"features"`
	Variants  *VariantGroupView `json:"variants,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

type VariantGroupView struct {
	Name    string              `json:"name"`
	Default string              `json:"default"`
	Options []VariantOptionView `json:"options"`
}

type VariantOptionView struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Price    float64           `json:"price"`
	Stock    int64             `json:"stock"`
	InStock  bool              `json:"inStock"`
	Selected map[string]string `json:"selected,omitempty"`
	Features []string          `json:"features,omitempty"`
}

// ListProducts returns every active product in storefront shape,
// newest first. Any failure fails the whole listing; there is no
// partial catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]ProductView, error) {
	products, err := s.products.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("Catalog: failed to list products")
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, toProductView(&products[i]))
	}
	return views, nil
}

func toProductView(p *models.Product) ProductView {
	view := ProductView{
		ID:        p.ID.String(),
		SKU:       p.SKU,
		Name:      p.Name,
		Desc:      p.Description,
		LongDesc:  p.LongDesc,
		Img:       p.Img,
		Images:    emptyIfNil(p.Images),
		Price:     float64(p.PriceCents) / 100,
		Category:  emptyIfNil(p.Category),
		Brand:     p.Brand,
		InStock:   ProductInStock(*p),
		Features:  emptyIfNil(p.Features),
		CreatedAt: p.CreatedAt,
	}

	if p.Variants != nil {
		view.Variants = toVariantGroupView(p.Variants)
	}
	return view
}

func toVariantGroupView(g *models.VariantGroup) *VariantGroupView {
	options := make([]VariantOptionView, 0, len(g.Options))
	for i := range g.Options {
		opt := &g.Options[i]
		options = append(options, VariantOptionView{
			ID:       opt.ID,
			Name:     opt.Name,
			Price:    opt.Price,
			Stock:    opt.AvailableQuantity(),
			InStock:  opt.Available(),
			Selected: opt.Selected,
			Features: opt.Features,
		})
	}
	return &VariantGroupView{
		Name:    g.Name,
		Default: g.Default,
		Options: options,
	}
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
