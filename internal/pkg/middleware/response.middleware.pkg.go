package middleware

import (
	types "draftorder-gateway/internal/common/type"

	"github.com/gin-gonic/gin"
)

// ResponseInit installs the "send" closure handlers pull from the context.
// Every terminal response goes through it, so the envelope shape and the
// abort semantics live in one place.
func ResponseInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("send", func(r *types.Response) {
			c.JSON(r.Code, r.Envelope())
			c.Abort()
		})
		c.Next()
	}
}
