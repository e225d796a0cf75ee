package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeUnknownItem   = "UNKNOWN_ITEM"
	ErrCodeNothingToPay  = "NOTHING_TO_PAY"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInvalidParam  = "INVALID_PARAMETER"
	ErrCodeUnauthorised  = "UNAUTHORIZED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrUnknownItem  = NewDomainError(ErrCodeUnknownItem, "Item is not on the menu")
	ErrNothingToPay = NewDomainError(ErrCodeNothingToPay, "Please select items to calculate the total.")
)
