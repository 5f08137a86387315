package draftorder

import (
	"fmt"
	"net/http"

	types "draftorder-gateway/internal/common/type"
	"draftorder-gateway/internal/pkg/helper"
	"draftorder-gateway/internal/pkg/logger"
	"draftorder-gateway/internal/pkg/shopify"
	"draftorder-gateway/internal/pkg/validation"

	"github.com/samber/lo"
)

// CreateDraftOrder runs the linear pipeline: admission, one upstream call,
// normalization. No branch loops back and nothing is retried.
func (s *Service) CreateDraftOrder(cfg *shopify.Config, req *CreateDraftOrderRequest, requestID string) *types.Response {
	if resp := s.admit(req, requestID); resp != nil {
		return resp
	}

	outcome := s.shopify.CreateDraftOrder(s.ctx, cfg, req.Mutation, req.Variables)

	return s.normalize(outcome, req, requestID)
}

func (s *Service) admit(req *CreateDraftOrderRequest, requestID string) *types.Response {
	err := validation.Validate(req)
	if err == nil {
		return nil
	}

	logger.Info.Printf("branch=validation_error paymentId=%s requestId=%s err=%v", req.PaymentID, requestID, err)

	return helper.ParseResponse(&types.Response{
		Code:    http.StatusBadRequest,
		Message: "mutation and variables are required",
		Extra: map[string]any{
			"received": ReceivedFields{
				Mutation:    req.Mutation != "",
				Variables:   len(req.Variables) > 0,
				PaymentID:   req.PaymentID != "",
				TotalAmount: req.TotalAmount != nil,
			},
		},
	})
}

// normalize maps each outcome kind to exactly one envelope shape.
func (s *Service) normalize(outcome *shopify.Outcome, req *CreateDraftOrderRequest, requestID string) *types.Response {
	paymentID := req.PaymentID

	switch outcome.Kind {
	case shopify.OutcomeTimeout:
		logger.Error.Printf("branch=%s paymentId=%s requestId=%s err=%v", outcome.Kind, paymentID, requestID, outcome.Err)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusGatewayTimeout,
			Message: "timeout waiting for the upstream platform",
		})

	case shopify.OutcomeTransportFailure:
		logger.Error.Printf("branch=%s paymentId=%s requestId=%s err=%v", outcome.Kind, paymentID, requestID, outcome.Err)
		return helper.ParseResponse(&types.Response{
			Code:  http.StatusInternalServerError,
			Error: outcome.Err,
			Extra: map[string]any{"type": outcome.Kind.String()},
		})

	case shopify.OutcomeHTTPError:
		logger.Error.Printf("branch=%s paymentId=%s requestId=%s status=%d body=%s",
			outcome.Kind, paymentID, requestID, outcome.StatusCode, helper.Truncate(outcome.Body, 512))
		return helper.ParseResponse(&types.Response{
			Code:    outcome.StatusCode,
			Message: "upstream request failed",
			Extra: map[string]any{
				"statusCode": outcome.StatusCode,
				"details":    outcome.Body,
			},
		})

	case shopify.OutcomeGraphQLError:
		logger.Error.Printf("branch=%s paymentId=%s requestId=%s errors=%s",
			outcome.Kind, paymentID, requestID, errorMessages(outcome.Errors))
		return helper.ParseResponse(&types.Response{
			Code:   http.StatusBadRequest,
			Errors: outcome.Errors,
			Hint:   "check the mutation syntax and API permissions",
		})

	case shopify.OutcomeBusinessError:
		logger.Info.Printf("branch=%s paymentId=%s requestId=%s userErrors=%s",
			outcome.Kind, paymentID, requestID, errorMessages(outcome.UserErrors))
		return helper.ParseResponse(&types.Response{
			Code:   http.StatusBadRequest,
			Errors: outcome.UserErrors,
			Hint:   "check the draft order input fields",
		})

	case shopify.OutcomeMissingPayload:
		logger.Error.Printf("branch=%s paymentId=%s requestId=%s", outcome.Kind, paymentID, requestID)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusBadGateway,
			Message: "failed to create draft order",
		})

	case shopify.OutcomeSuccess:
		logger.Info.Printf("branch=%s paymentId=%s requestId=%s draftOrderId=%s",
			outcome.Kind, paymentID, requestID, outcome.DraftOrder.ID)

		extra := map[string]any{
			"draftOrderId":   outcome.DraftOrder.ID,
			"draftOrderName": outcome.DraftOrder.Name,
			"invoiceUrl":     outcome.DraftOrder.InvoiceURL,
		}
		if req.PaymentID != "" {
			extra["paymentId"] = req.PaymentID
		}
		if req.TotalAmount != nil {
			extra["totalAmount"] = *req.TotalAmount
		}

		return helper.ParseResponse(&types.Response{
			Code:  http.StatusOK,
			Data:  outcome.Data,
			Extra: extra,
		})
	}

	logger.Error.Printf("branch=unknown_outcome paymentId=%s requestId=%s kind=%d", paymentID, requestID, outcome.Kind)
	return helper.ParseResponse(&types.Response{
		Code:    http.StatusInternalServerError,
		Message: "unhandled upstream outcome",
	})
}

// errorMessages flattens upstream error objects to their message fields for
// one-line logging.
func errorMessages(errs []any) string {
	msgs := lo.Map(errs, func(e any, _ int) string {
		if m, ok := e.(map[string]any); ok {
			if msg, ok := m["message"].(string); ok {
				return msg
			}
		}
		return fmt.Sprintf("%v", e)
	})
	return fmt.Sprintf("%q", msgs)
}
