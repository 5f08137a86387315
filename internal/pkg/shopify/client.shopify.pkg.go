package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"draftorder-gateway/internal/pkg/logger"
)

// Client is the Admin GraphQL client. It holds only the shared transport;
// credentials travel in the per-request Config so one process can serve
// whatever the environment currently says.
type Client struct {
	httpClient *http.Client
}

func Setup() *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
	}

	// No client-level timeout: the per-call context carries the budget so
	// expiry actively cancels the in-flight request.
	return &Client{
		httpClient: &http.Client{Transport: transport},
	}
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []any           `json:"errors"`
}

type draftOrderCreateData struct {
	DraftOrderCreate struct {
		DraftOrder *DraftOrder `json:"draftOrder"`
		UserErrors []any       `json:"userErrors"`
	} `json:"draftOrderCreate"`
}

// CreateDraftOrder issues exactly one draftOrderCreate call and classifies
// the result. One request, one attempt — retry policy belongs to the caller.
// The classification is a strict ordered cascade: timeout, transport,
// non-2xx, top-level errors, userErrors, missing draftOrder, success.
func (c *Client) CreateDraftOrder(ctx context.Context, cfg *Config, mutation string, variables map[string]any) *Outcome {
	payload, err := json.Marshal(map[string]any{
		"query":     mutation,
		"variables": variables,
	})
	if err != nil {
		return &Outcome{Kind: OutcomeTransportFailure, Err: fmt.Errorf("encode request: %w", err)}
	}

	callCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, cfg.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return &Outcome{Kind: OutcomeTransportFailure, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, cfg.AccessToken)

	logger.Debug.Printf("upstream request endpoint=%s apiVersion=%s", cfg.Endpoint(), cfg.APIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.classifyCallError(callCtx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.classifyCallError(callCtx, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// A non-2xx body's shape is not guaranteed; keep it as raw text.
		return &Outcome{Kind: OutcomeHTTPError, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed gqlResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &Outcome{Kind: OutcomeTransportFailure, Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(parsed.Errors) > 0 {
		return &Outcome{Kind: OutcomeGraphQLError, Errors: parsed.Errors}
	}

	var data draftOrderCreateData
	if len(parsed.Data) > 0 {
		if err := json.Unmarshal(parsed.Data, &data); err != nil {
			return &Outcome{Kind: OutcomeTransportFailure, Err: fmt.Errorf("decode data: %w", err)}
		}
	}

	if len(data.DraftOrderCreate.UserErrors) > 0 {
		return &Outcome{Kind: OutcomeBusinessError, UserErrors: data.DraftOrderCreate.UserErrors}
	}

	if data.DraftOrderCreate.DraftOrder == nil {
		return &Outcome{Kind: OutcomeMissingPayload}
	}

	var raw map[string]any
	_ = json.Unmarshal(parsed.Data, &raw)

	return &Outcome{
		Kind:       OutcomeSuccess,
		DraftOrder: data.DraftOrderCreate.DraftOrder,
		Data:       raw,
	}
}

// classifyCallError separates budget expiry from every other transport
// failure. Only the deadline of this call counts as a timeout; the caller
// going away is a plain transport failure.
func (c *Client) classifyCallError(callCtx context.Context, err error) *Outcome {
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return &Outcome{Kind: OutcomeTimeout, Err: err}
	}
	return &Outcome{Kind: OutcomeTransportFailure, Err: err}
}
