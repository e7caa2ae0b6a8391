package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/leetpulse/dskit/pkg/errors"
)

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// writeErr writes err with the status its code maps to. Unclassified
// errors are logged by the caller and reported without their text.
func writeErr(w http.ResponseWriter, err error) {
	status := statusFor(err)
	resp := errorResponse{
		Error:   errors.UserMessage(err),
		Code:    string(errors.GetCode(err)),
		Details: errors.Details(err),
	}
	if status == http.StatusInternalServerError {
		resp.Error = "internal error"
		if resp.Code == "" {
			resp.Code = string(errors.ErrCodeInternal)
		}
	}
	writeJSON(w, status, resp)
}

// statusFor maps an error code to an HTTP status. Documents that parse but
// describe a broken graph or tree are unprocessable; every other INVALID_*
// is a bad request.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidAdjacency, errors.ErrCodeInvalidTree:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	if errors.IsInvalid(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
