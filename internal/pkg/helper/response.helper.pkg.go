package helper

import (
	"net/http"

	types "draftorder-gateway/internal/common/type"
)

// ParseResponse normalizes a Response before it is handed to the send
// middleware: fills the status code default and derives the message from a
// wrapped error when none was set explicitly.
func ParseResponse(r *types.Response) *types.Response {
	if r.Code == 0 {
		r.Code = http.StatusInternalServerError
	}
	if r.Message == "" && r.Error != nil {
		r.Message = r.Error.Error()
	}
	return r
}
