// internal/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the storefront origin plus local dev servers. The
// webhook endpoint is server-to-server and unaffected.
func CORS(frontendURL string) gin.HandlerFunc {
	origins := []string{frontendURL}
	if frontendURL != "http://localhost:5173" {
		origins = append(origins, "http://localhost:5173")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "X-Debug-Token"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
