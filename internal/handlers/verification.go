// internal/handlers/verification.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackeed/hackeed-backend/internal/i18n"
	"github.com/hackeed/hackeed-backend/internal/services"
	"github.com/hackeed/hackeed-backend/internal/utils"
)

type VerificationHandler struct {
	verification *services.VerificationService
}

func NewVerificationHandler(verification *services.VerificationService) *VerificationHandler {
	return &VerificationHandler{verification: verification}
}

// VerifySession reports whether the payment behind a checkout session
// completed, for the success page to confirm against the processor
// rather than trusting the redirect.
func (h *VerificationHandler) VerifySession(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		lang := utils.GetLangFromContext(c)
		utils.ErrorJSON(c, http.StatusBadRequest, i18n.T(lang, i18n.KeyVerifyMissingSession))
		return
	}

	result, err := h.verification.VerifySession(c.Request.Context(), sessionID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}
