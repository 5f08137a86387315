package shopify

// OutcomeKind tags the single classification produced by one upstream call.
// The classification cascade in CreateDraftOrder assigns exactly one kind
// per invocation; normalization switches over it exhaustively.
type OutcomeKind int

const (
	OutcomeTimeout OutcomeKind = iota
	OutcomeTransportFailure
	OutcomeHTTPError
	OutcomeGraphQLError
	OutcomeBusinessError
	// OutcomeMissingPayload: HTTP success, no reported errors, but no
	// draftOrder node either. The upstream violated its own contract, so
	// this stays distinct from OutcomeHTTPError.
	OutcomeMissingPayload
	OutcomeSuccess
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeTimeout:
		return "timeout"
	case OutcomeTransportFailure:
		return "transport_failure"
	case OutcomeHTTPError:
		return "upstream_http_error"
	case OutcomeGraphQLError:
		return "graphql_error"
	case OutcomeBusinessError:
		return "business_error"
	case OutcomeMissingPayload:
		return "missing_payload"
	case OutcomeSuccess:
		return "success"
	}
	return "unknown"
}

// DraftOrder is the node extracted from data.draftOrderCreate.draftOrder.
type DraftOrder struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	InvoiceURL *string `json:"invoiceUrl"`
}

// Outcome is the tagged result of one draftOrderCreate invocation. Which
// fields are populated depends on Kind:
//
//	Timeout, TransportFailure  — Err
//	HTTPError                  — StatusCode, Body (raw response text)
//	GraphQLError               — Errors (top-level errors array, verbatim)
//	BusinessError              — UserErrors (verbatim)
//	Success                    — DraftOrder, Data (full data object)
type Outcome struct {
	Kind       OutcomeKind
	Err        error
	StatusCode int
	Body       string
	Errors     []any
	UserErrors []any
	DraftOrder *DraftOrder
	Data       map[string]any
}
