// internal/handlers/debug.go
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackeed/hackeed-backend/internal/config"
	"github.com/hackeed/hackeed-backend/internal/models"
	"github.com/hackeed/hackeed-backend/internal/utils"
)

// DebugProductLister exposes the unfiltered catalog for diagnostics.
type DebugProductLister interface {
	ListAll(ctx context.Context) ([]models.Product, error)
}

type DebugHandler struct {
	products DebugProductLister
	cfg      *config.Config
}

func NewDebugHandler(products DebugProductLister, cfg *config.Config) *DebugHandler {
	return &DebugHandler{products: products, cfg: cfg}
}

// GetProducts dumps raw product rows, inactive ones included. Open in
// development; outside development it requires the configured token in
// X-Debug-Token.
func (h *DebugHandler) GetProducts(c *gin.Context) {
	if h.cfg.Environment != "development" {
		token := c.GetHeader("X-Debug-Token")
		if h.cfg.Debug.Token == "" || token != h.cfg.Debug.Token {
			utils.ForbiddenResponse(c)
			return
		}
	}

	// Unlike the public endpoints, failures here echo the underlying
	// error; this endpoint exists for diagnosis.
	products, err := h.products.ListAll(c.Request.Context())
	if err != nil {
		utils.ErrorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}
