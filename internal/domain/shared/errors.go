package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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

// Common domain errors.
//
// ErrIntegrityConflict covers unique and foreign-key violations at the
// storage layer. It is user-correctable and surfaced as a client error;
// callers that hit it on a generated identifier may retry with a freshly
// generated one, but the operation itself never retries.
//
// ErrStorageUnavailable covers every other persistence failure and is
// surfaced as a server error.
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrIntegrityConflict  = NewDomainError("INTEGRITY_CONFLICT", "Storage integrity constraint violated")
	ErrStorageUnavailable = NewDomainError("STORAGE_UNAVAILABLE", "Storage layer unavailable")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInvalidState       = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)
