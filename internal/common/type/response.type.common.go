package types

// Response is the internal result every handler and service produces. The
// response middleware converts it into the client-facing JSON envelope, so
// the envelope is built in exactly one place.
type Response struct {
	Code    int
	Message string
	Data    any
	Error   error
	Errors  []any
	Hint    string
	// Extra holds outcome-specific top-level envelope fields, e.g.
	// draftOrderId, statusCode, received. Values may be nil (serialized
	// as JSON null).
	Extra map[string]any
}

// ResponseAPI documents the envelope shape for swagger.
type ResponseAPI struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Errors  []any  `json:"errors,omitempty"`
	Hint    string `json:"hint,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Envelope renders the uniform response body. Success is derived from the
// status code; failure envelopes carry an "error" message, never the raw
// wrapped error object.
func (r *Response) Envelope() map[string]any {
	success := r.Code >= 200 && r.Code < 300

	env := map[string]any{"success": success}

	if !success {
		msg := r.Message
		if msg == "" && r.Error != nil {
			msg = r.Error.Error()
		}
		if msg != "" {
			env["error"] = msg
		}
	}
	if r.Data != nil {
		env["data"] = r.Data
	}
	if len(r.Errors) > 0 {
		env["errors"] = r.Errors
	}
	if r.Hint != "" {
		env["hint"] = r.Hint
	}
	for k, v := range r.Extra {
		env[k] = v
	}

	return env
}
