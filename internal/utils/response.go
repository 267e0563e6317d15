// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/hackeed/hackeed-backend/internal/i18n"

	"github.com/gin-gonic/gin"
)

// ErrorJSON writes the storefront error shape: a bare object with a
// single "error" field. The frontend reads nothing else from failures.
func ErrorJSON(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	if message == "" {
		lang := GetLangFromContext(c)
		message = i18n.T(lang, i18n.KeyValidationInvalid, "request")
	}
	ErrorJSON(c, http.StatusBadRequest, message)
}

func ForbiddenResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	ErrorJSON(c, http.StatusForbidden, i18n.T(lang, i18n.KeyDebugAccessDenied))
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		lang := GetLangFromContext(c)
		message = i18n.T(lang, i18n.KeyErrorGeneric)
	}
	ErrorJSON(c, http.StatusInternalServerError, message)
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}
