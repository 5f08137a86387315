package draftorder

import (
	"context"

	types "draftorder-gateway/internal/common/type"
	"draftorder-gateway/internal/pkg/shopify"
)

type Service struct {
	ctx     context.Context
	shopify *shopify.Client
}

type IService interface {
	CreateDraftOrder(cfg *shopify.Config, req *CreateDraftOrderRequest, requestID string) *types.Response
}

func NewService(ctx context.Context, shopifyClient *shopify.Client) IService {
	return &Service{
		ctx:     ctx,
		shopify: shopifyClient,
	}
}

// Request/Response DTOs

// CreateDraftOrderRequest is the inbound body. PaymentID and TotalAmount are
// opaque correlation values echoed back on success, never interpreted here.
type CreateDraftOrderRequest struct {
	Mutation    string         `json:"mutation" validate:"required"`
	Variables   map[string]any `json:"variables" validate:"required,mapStringInterface"`
	PaymentID   string         `json:"paymentId"`
	TotalAmount *float64       `json:"totalAmount"`
}

// ReceivedFields echoes which body fields were present, to aid client
// debugging without echoing any field values.
type ReceivedFields struct {
	Mutation    bool `json:"mutation"`
	Variables   bool `json:"variables"`
	PaymentID   bool `json:"paymentId"`
	TotalAmount bool `json:"totalAmount"`
}
