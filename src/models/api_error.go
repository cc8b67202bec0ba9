package models

import "fmt"

// APIError is returned when the API responds with an error payload instead of
// the requested resource, or when the response cannot be reconciled with the
// configured schema. The full raw response is kept for diagnostics.
type APIError struct {
	Response map[string]interface{}
}

func (e *APIError) Error() string {
	if msg, ok := e.Response["message"].(string); ok {
		return fmt.Sprintf("api error: %s", msg)
	}

	return fmt.Sprintf("api error: %v", e.Response)
}

func NewAPIError(response map[string]interface{}) *APIError {
	return &APIError{Response: response}
}
