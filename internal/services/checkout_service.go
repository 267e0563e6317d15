// internal/services/checkout_service.go
package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hackeed/hackeed-backend/internal/models"
	"github.com/hackeed/hackeed-backend/internal/payments"
)

// MaxQuantityPerItem is the fixed per-line purchase cap.
const MaxQuantityPerItem = 10

const defaultCustomerEmail = "test@example.com"

// ProductCatalog is the read surface checkout validates against.
type ProductCatalog interface {
	ActiveByIDs(ctx context.Context, ids []string) ([]models.Product, error)
}

type CheckoutService struct {
	catalog  ProductCatalog
	payments PaymentProvider
}

type CartVariantOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CartItemVariants is the client's claim about which variant a cart
// line refers to. The claim is re-resolved against current catalog
// state; only the resolved option's data is trusted.
type CartItemVariants struct {
	Selected map[string]string  `json:"selected"`
	Option   *CartVariantOption `json:"option"`
}

type CartItem struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
	// Price is the unit price captured at add-to-cart time. It is
	// informational only and never used for charging.
	Price    float64           `json:"price"`
	Quantity int64             `json:"quantity"`
	Variants *CartItemVariants `json:"variants,omitempty"`
}

type CheckoutRequest struct {
	Items         []CartItem `json:"items" validate:"dive"`
	CustomerEmail string     `json:"customerEmail" validate:"omitempty,email"`
}

func NewCheckoutService(catalog ProductCatalog, provider PaymentProvider) *CheckoutService {
	return &CheckoutService{
		catalog:  catalog,
		payments: provider,
	}
}

// CreateSession validates the cart against current inventory and
// creates one payment session with a line item per cart entry.
// Validation is fail-fast: the first violating line rejects the whole
// cart, so the user is never charged for a cart different from the one
// they reviewed. Returns *CheckoutError on every failure path.
func (s *CheckoutService) CreateSession(ctx context.Context, req *CheckoutRequest) (*payments.SessionRef, error) {
	if len(req.Items) == 0 {
		return nil, errEmptyCart()
	}

	// Products may appear on multiple lines (one per variant).
	uniqueIDs := distinctProductIDs(req.Items)

	dbProducts, err := s.catalog.ActiveByIDs(ctx, uniqueIDs)
	if err != nil {
		logrus.WithError(err).Error("Checkout: failed to fetch products")
		return nil, errGeneric()
	}

	if len(dbProducts) != len(uniqueIDs) {
		logrus.WithFields(logrus.Fields{
			"expected": len(uniqueIDs),
			"found":    len(dbProducts),
			"missing":  missingProductIDs(uniqueIDs, dbProducts),
		}).Warn("Checkout: product count mismatch")
		return nil, errProductUnavailable()
	}

	byID := make(map[string]models.Product, len(dbProducts))
	for _, p := range dbProducts {
		byID[p.ID.String()] = p
	}

	lineItems := make([]payments.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		line, cerr := s.buildLineItem(item, byID)
		if cerr != nil {
			return nil, cerr
		}
		lineItems = append(lineItems, *line)
	}

	email := req.CustomerEmail
	if email == "" {
		email = defaultCustomerEmail
	}

	ref, err := s.payments.CreateSession(email, lineItems)
	if err != nil {
		logrus.WithError(err).Error("Checkout: session creation failed")
		return nil, checkoutErrorFromPayment(err)
	}

	logrus.WithFields(logrus.Fields{
		"session_id": ref.ID,
		"lines":      len(lineItems),
	}).Info("Checkout session created")

	return ref, nil
}

func (s *CheckoutService) buildLineItem(item CartItem, byID map[string]models.Product) (*payments.LineItem, *CheckoutError) {
	product, ok := byID[item.ID]
	if !ok {
		// Unreachable after the count check, but defends against a
		// race between fetch and per-line processing.
		return nil, errProductUnavailable()
	}

	if item.Quantity <= 0 {
		return nil, errQuantityInvalid(product.Name)
	}
	if item.Quantity > MaxQuantityPerItem {
		return nil, errQuantityMax(product.Name, MaxQuantityPerItem)
	}

	displayName := item.Name
	if displayName == "" {
		displayName = product.Name
	}

	metadata := map[string]string{
		"product_id": product.ID.String(),
	}

	var available int64
	var unitAmount int64

	if product.Variants != nil && item.Variants != nil {
		var option *models.VariantOption
		if item.Variants.Option != nil {
			option = product.Variants.FindOption(item.Variants.Option.ID, item.Variants.Option.Name)
		} else {
			// No explicit option claim; resolve from the axis selection,
			// falling back to the group default.
			option = ResolveVariant(product, item.Variants.Selected).Option
		}
		if option == nil {
			return nil, errVariantNotFound(product.Name)
		}

		available = option.AvailableQuantity()
		unitAmount = int64(math.Round(option.Price * 100))

		metadata["variant_key"] = variantKey(item.Variants.Selected)
		optionKey := option.ID
		if optionKey == "" {
			optionKey = option.Name
		}
		metadata["variant_option_id"] = optionKey
	} else {
		available = product.Stock
		unitAmount = product.PriceCents
	}

	if available < item.Quantity {
		return nil, errStockExceeded(displayName, available, item.Quantity)
	}

	return &payments.LineItem{
		Name:            displayName,
		UnitAmountCents: unitAmount,
		Quantity:        item.Quantity,
		Metadata:        metadata,
	}, nil
}

func checkoutErrorFromPayment(err error) *CheckoutError {
	switch payments.Categorize(err) {
	case payments.CategoryUnreachable:
		return errPaymentUnreachable()
	case payments.CategoryRejected:
		return errPaymentRejected()
	case payments.CategoryMisconfigured:
		return errPaymentMisconfigured()
	default:
		return errGeneric()
	}
}

// variantKey canonicalizes a selection into sorted "axis:value" pairs
// joined by "|", so the webhook can reconstruct intent even when the
// option identifier was name-based.
func variantKey(selected map[string]string) string {
	pairs := make([]string, 0, len(selected))
	for k, v := range selected {
		pairs = append(pairs, k+":"+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "|")
}

func distinctProductIDs(items []CartItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}
	return ids
}

func missingProductIDs(requested []string, found []models.Product) []string {
	foundSet := make(map[string]struct{}, len(found))
	for _, p := range found {
		foundSet[p.ID.String()] = struct{}{}
	}
	var missing []string
	for _, id := range requested {
		if _, ok := foundSet[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
