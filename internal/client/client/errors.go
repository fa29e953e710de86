package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/postboard/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return nil
	}
}

// newAPIError extracts a message from a failed response body. The API puts
// it under "message" or "mensagem"; other bodies are used as plain text.
func newAPIError(status int, contentType string, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	if strings.HasPrefix(contentType, "application/json") {
		var payload struct {
			Message  string `json:"message"`
			Mensagem string `json:"mensagem"`
			Error    string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			for _, m := range []string{payload.Message, payload.Mensagem, payload.Error} {
				if m != "" {
					apiErr.Message = m
					return apiErr
				}
			}
		}
	}

	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
