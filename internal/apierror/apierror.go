// Package apierror provides the standardized error response structures for the
// API. All errors returned to clients go through this package so that internal
// details (stack traces, raw driver errors) never leak.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError aggregates the product form validation messages. Errors
// carries one human-readable string per failed rule, in evaluation order.
type ValidationError struct {
	Detail string   `json:"detail"`
	Errors []string `json:"errors"`
}

func NewValidation(errs []string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Errors: errs}
}
