// internal/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackeed/hackeed-backend/internal/i18n"
	"github.com/hackeed/hackeed-backend/internal/services"
	"github.com/hackeed/hackeed-backend/internal/utils"
)

type ProductHandler struct {
	catalog *services.CatalogService
}

func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GetProducts returns the active catalog as a bare JSON array, the
// shape the storefront consumes directly.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.ErrorJSON(c, http.StatusInternalServerError, i18n.T(lang, i18n.KeyErrorStorage))
		return
	}

	c.JSON(http.StatusOK, products)
}
