package server

import (
	"encoding/json"
	"net/http"

	errs "github.com/openmesh-network/meshviz/pkg/errors"
)

type errorBody struct {
	Code      errs.Code `json:"code"`
	Error     string    `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

func errNotFound(path string) error {
	return errs.New(errs.ErrCodeNotFound, "no route for %s", path)
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch code := errs.GetCode(err); {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case code == errs.ErrCodeNotFound:
		return http.StatusNotFound
	case code == errs.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case code == errs.ErrCodeCacheUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes {"code", "error"} with the mapped status. Internal
// errors are logged by the caller; their message is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := errorBody{
		Code:      errs.GetCode(err),
		Error:     errs.UserMessage(err),
		RequestID: RequestIDFromContext(r.Context()),
	}
	if body.Code == "" {
		body.Code = errs.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		body.Error = "internal error"
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
