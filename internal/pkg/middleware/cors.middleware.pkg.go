package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CorsMiddleware attaches the CORS headers to every response path and
// answers pre-flight OPTIONS requests with an empty 200 before routing.
func CorsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
