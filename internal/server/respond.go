package server

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/taxfootprint/footprint-calculator/internal/config"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, RequestID: RequestIDFromContext(r.Context())})
}

// decodeForm reads the request body as a form snapshot. An empty body is an
// empty form, which the engine fills with defaults.
func decodeForm(w http.ResponseWriter, r *http.Request) (domain.FormInput, error) {
	form, err := config.DecodeFormJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if errors.Is(err, config.ErrEmptyForm) {
		return domain.FormInput{}, nil
	}
	return form, err
}
