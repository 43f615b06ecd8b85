package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeMissingParameter = "MISSING_PARAMETER"
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeReviewNotFound   = "REVIEW_NOT_FOUND"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeIntegrity        = "INTEGRITY_VIOLATION"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business-logic error carrying a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrCategoryNotFound = NewDomainError(ErrCodeCategoryNotFound, "Category not found")
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrReviewNotFound   = NewDomainError(ErrCodeReviewNotFound, "Review not found")
	ErrUnauthenticated  = NewDomainError(ErrCodeUnauthorised, "Authentication required")
	ErrForbidden        = NewDomainError(ErrCodeForbidden, "You do not have permission to perform this action")
)

// ValidationError reports field-level validation failures. Nothing carrying
// a ValidationError ever reaches storage.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// IntegrityError wraps a storage-layer referential integrity failure, e.g.
// a foreign key violated by a concurrent delete. Surfaces as a 5xx, never
// as silent success.
type IntegrityError struct {
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("storage integrity violation: %v", e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}
