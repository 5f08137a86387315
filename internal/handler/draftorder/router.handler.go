package draftorder

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	orders := e.Group("/v1/draft-orders")

	orders.POST("", h.CreateDraftOrder)
}
