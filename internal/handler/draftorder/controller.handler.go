package draftorder

import (
	"context"
	"net/http"

	types "draftorder-gateway/internal/common/type"
	"draftorder-gateway/internal/pkg/helper"
	"draftorder-gateway/internal/pkg/logger"
	"draftorder-gateway/internal/pkg/shopify"
	draftorderService "draftorder-gateway/internal/service/draftorder"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ctx               context.Context
	draftOrderService draftorderService.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
}

func NewHandler(ctx context.Context, draftOrderService draftorderService.IService) IHandler {
	return &Handler{
		ctx:               ctx,
		draftOrderService: draftOrderService,
	}
}

// CreateDraftOrder godoc
// @Summary      Create a draft order
// @Description  Forwards a client-supplied draftOrderCreate mutation to the Shopify Admin GraphQL API with server-held credentials and returns a normalized envelope
// @Tags         DraftOrders
// @Accept       json
// @Produce      json
// @Param        request  body      draftorderService.CreateDraftOrderRequest  true  "Draft order mutation request"
// @Success      200      {object}  types.ResponseAPI
// @Failure      400      {object}  types.ResponseAPI
// @Failure      500      {object}  types.ResponseAPI
// @Failure      504      {object}  types.ResponseAPI
// @Router       /v1/draft-orders [post]
func (h *Handler) CreateDraftOrder(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))
	requestID := c.GetString("requestId")

	// Config is a deployment fault, checked before the body is read: a
	// broken deployment must answer 500 no matter what the client sent.
	cfg, err := shopify.ResolveConfig()
	if err != nil {
		logger.Error.Printf("branch=config_error requestId=%s err=%v", requestID, err)
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "server configuration error",
		}))
		return
	}

	var req draftorderService.CreateDraftOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Info.Printf("branch=validation_error requestId=%s err=%v", requestID, err)
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		}))
		return
	}

	send(h.draftOrderService.CreateDraftOrder(cfg, &req, requestID))
}
