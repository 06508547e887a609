package model

import "net/http"

// ErrorKind classifies a domain error for HTTP status mapping.
type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION"
	KindConflict     ErrorKind = "CONFLICT"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindServerFault  ErrorKind = "SERVER_FAULT"
)

// HTTPStatus returns the status code reported to callers for this kind.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// DomainError represents a business-rule failure with a caller-visible message.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound  = NewDomainError(KindNotFound, "Product not found")
	ErrUserNotFound     = NewDomainError(KindNotFound, "User not found")
	ErrOrderNotFound    = NewDomainError(KindNotFound, "Order not found")
	ErrEmailTaken       = NewDomainError(KindConflict, "Email is already registered")
	ErrPasswordMismatch = NewDomainError(KindValidation, "Passwords do not match")
	ErrMissingFields    = NewDomainError(KindValidation, "All required fields must be provided")
	ErrMissingImage     = NewDomainError(KindValidation, "An image upload or image URL is required")
	ErrInvalidQuantity  = NewDomainError(KindValidation, "Quantity must be greater than zero")
	ErrInvalidStatus    = NewDomainError(KindValidation, "Status must be Pending, Shipped or Delivered")
	ErrInvalidProductID = NewDomainError(KindValidation, "Invalid product id")
	ErrInvalidRole      = NewDomainError(KindValidation, "Role must be user or admin")
	ErrInvalidRating    = NewDomainError(KindValidation, "Rating must be between 1 and 5")
	ErrInvalidCategory  = NewDomainError(KindValidation, "Category must be men, women or kids")
	ErrInvalidPrice     = NewDomainError(KindValidation, "Price must be greater than zero")
	ErrEmptyOrder       = NewDomainError(KindValidation, "Order must contain at least one item")
	ErrWrongPassword    = NewDomainError(KindUnauthorized, "Incorrect password")
	ErrRoleMismatch     = NewDomainError(KindForbidden, "Account role does not match")
)
