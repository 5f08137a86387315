package draftorder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"draftorder-gateway/internal/pkg/logger"
	"draftorder-gateway/internal/pkg/shopify"
	"draftorder-gateway/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup()
	if err := validation.Setup(); err != nil {
		panic(err)
	}
	m.Run()
}

func newTestService() IService {
	return NewService(context.Background(), shopify.Setup())
}

func upstreamConfig(url string) *shopify.Config {
	return &shopify.Config{
		StoreDomain: url,
		AccessToken: "shpat_test",
		APIVersion:  shopify.DefaultAPIVersion,
		Timeout:     5 * time.Second,
	}
}

func validRequest() *CreateDraftOrderRequest {
	amount := 42.5
	return &CreateDraftOrderRequest{
		Mutation:    "mutation DraftOrderCreate($input: DraftOrderInput!) { draftOrderCreate(input: $input) { draftOrder { id } } }",
		Variables:   map[string]any{"input": map[string]any{"note": "test"}},
		PaymentID:   "pay_123",
		TotalAmount: &amount,
	}
}

func TestAdmissionReceivedFlags(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		req  *CreateDraftOrderRequest
		want ReceivedFields
	}{
		{
			name: "empty body",
			req:  &CreateDraftOrderRequest{},
			want: ReceivedFields{},
		},
		{
			name: "missing variables",
			req:  &CreateDraftOrderRequest{Mutation: "mutation { x }", PaymentID: "pay_1"},
			want: ReceivedFields{Mutation: true, PaymentID: true},
		},
		{
			name: "empty variables object",
			req:  &CreateDraftOrderRequest{Mutation: "mutation { x }", Variables: map[string]any{}},
			want: ReceivedFields{Mutation: true},
		},
		{
			name: "missing mutation",
			req: &CreateDraftOrderRequest{
				Variables:   map[string]any{"input": map[string]any{}},
				TotalAmount: new(float64),
			},
			want: ReceivedFields{Variables: true, TotalAmount: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := svc.CreateDraftOrder(upstreamConfig("unused.invalid"), tt.req, "req-1")

			require.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, tt.want, resp.Extra["received"])
		})
	}
}

func TestNormalizeSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"draftOrderCreate":{"draftOrder":{"id":"gid://1","name":"#D1","invoiceUrl":"https://x/invoice"},"userErrors":[]}}}`))
	}))
	defer ts.Close()

	resp := newTestService().CreateDraftOrder(upstreamConfig(ts.URL), validRequest(), "req-1")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "gid://1", resp.Extra["draftOrderId"])
	assert.Equal(t, "#D1", resp.Extra["draftOrderName"])
	require.NotNil(t, resp.Extra["invoiceUrl"])
	assert.Equal(t, "https://x/invoice", *resp.Extra["invoiceUrl"].(*string))
	assert.Equal(t, "pay_123", resp.Extra["paymentId"])
	assert.Equal(t, 42.5, resp.Extra["totalAmount"])
	assert.NotNil(t, resp.Data)

	env := resp.Envelope()
	assert.Equal(t, true, env["success"])
	assert.NotContains(t, env, "error")
}

func TestNormalizeBusinessError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"draftOrderCreate":{"draftOrder":null,"userErrors":[{"field":"variantId","message":"invalid"}]}}}`))
	}))
	defer ts.Close()

	resp := newTestService().CreateDraftOrder(upstreamConfig(ts.URL), validRequest(), "req-1")

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Len(t, resp.Errors, 1)
	userErr := resp.Errors[0].(map[string]any)
	assert.Equal(t, "variantId", userErr["field"])
	assert.Equal(t, "invalid", userErr["message"])
	assert.Equal(t, "check the draft order input fields", resp.Hint)
}

func TestNormalizeGraphQLError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"syntax error"}]}`))
	}))
	defer ts.Close()

	resp := newTestService().CreateDraftOrder(upstreamConfig(ts.URL), validRequest(), "req-1")

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "check the mutation syntax and API permissions", resp.Hint)
}

func TestNormalizeHTTPErrorStatusPassthrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("forbidden"))
	}))
	defer ts.Close()

	resp := newTestService().CreateDraftOrder(upstreamConfig(ts.URL), validRequest(), "req-1")

	require.Equal(t, http.StatusForbidden, resp.Code)
	assert.Equal(t, "upstream request failed", resp.Message)
	assert.Equal(t, http.StatusForbidden, resp.Extra["statusCode"])
	assert.Equal(t, "forbidden", resp.Extra["details"])
}

func TestNormalizeMissingPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"draftOrderCreate":{"draftOrder":null,"userErrors":[]}}}`))
	}))
	defer ts.Close()

	resp := newTestService().CreateDraftOrder(upstreamConfig(ts.URL), validRequest(), "req-1")

	require.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Equal(t, "failed to create draft order", resp.Message)
}

func TestNormalizeTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer ts.Close()

	cfg := upstreamConfig(ts.URL)
	cfg.Timeout = 50 * time.Millisecond

	resp := newTestService().CreateDraftOrder(cfg, validRequest(), "req-1")

	require.Equal(t, http.StatusGatewayTimeout, resp.Code)
	assert.Contains(t, resp.Message, "timeout")
}

func TestNormalizeTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	resp := newTestService().CreateDraftOrder(upstreamConfig(ts.URL), validRequest(), "req-1")

	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "transport_failure", resp.Extra["type"])
	assert.NotEmpty(t, resp.Message)
}

func TestClassificationIsStableAcrossRepeats(t *testing.T) {
	// Identical input classifies identically; deduplication is the
	// caller's concern, not the gateway's.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"draftOrderCreate":{"draftOrder":{"id":"gid://1","name":"#D1","invoiceUrl":null},"userErrors":[]}}}`))
	}))
	defer ts.Close()

	svc := newTestService()
	for range 3 {
		resp := svc.CreateDraftOrder(upstreamConfig(ts.URL), validRequest(), "req-1")
		require.Equal(t, http.StatusOK, resp.Code)
		require.Equal(t, "gid://1", resp.Extra["draftOrderId"])
	}
}
