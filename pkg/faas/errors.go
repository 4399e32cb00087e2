package faas

import (
	"errors"
	"net/http"
)

// Validation errors. These are returned before any request is sent and are
// usually wrapped with detail, so match them with errors.Is.
var (
	ErrMissingResourceIdentifier  = errors.New("missing mandatory identifier parameter from options")
	ErrInvalidResourceIdentifier  = errors.New("invalid resource identifier, expected /namespace/[package/]name")
	ErrInvalidPayloadType         = errors.New("invalid payload type, params must be a mapping")
	ErrMissingActionBody          = errors.New("missing mandatory action or sequence parameter from options")
	ErrInvalidSequenceParameter   = errors.New("invalid sequence parameter, must be a non-empty list of action names")
	ErrInvalidOptionsParameters   = errors.New("invalid options parameters, action and sequence are mutually exclusive")
	ErrMissingRuleAction          = errors.New("missing mandatory action parameter from options")
	ErrMissingRuleTrigger         = errors.New("missing mandatory trigger parameter from options")
	ErrMissingFeedName            = errors.New("missing mandatory feedName parameter from options")
	ErrMissingFeedTrigger         = errors.New("missing mandatory trigger parameter from options")
	ErrOperationNotSupported      = errors.New("operation not supported for this resource")
	ErrMissingMandatoryParameters = errors.New("missing mandatory parameters")
	ErrInvalidParameters          = errors.New("invalid parameters")
)

// Construction errors.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrMissingAPIKey  = errors.New("invalid constructor options, missing api key")
	ErrMissingAPIHost = errors.New("invalid constructor options, missing api host")
)

var validationErrors = []error{
	ErrMissingResourceIdentifier,
	ErrInvalidResourceIdentifier,
	ErrInvalidPayloadType,
	ErrMissingActionBody,
	ErrInvalidSequenceParameter,
	ErrInvalidOptionsParameters,
	ErrMissingRuleAction,
	ErrMissingRuleTrigger,
	ErrMissingFeedName,
	ErrMissingFeedTrigger,
	ErrOperationNotSupported,
	ErrMissingMandatoryParameters,
	ErrInvalidParameters,
}

// APIError is the uniform error for every failure that happened while talking
// to the platform. StatusCode is zero when no HTTP response was received.
type APIError struct {
	Message    string
	StatusCode int
	Method     string
	URL        string
	// Body is the raw error body returned by the platform, if any.
	Body []byte

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying failure for non-HTTP errors.
func (e *APIError) Unwrap() error {
	return e.cause
}

// NewAPIError creates an APIError for a failure that never produced a status code.
func NewAPIError(message string, cause error) *APIError {
	return &APIError{Message: message, cause: cause}
}

// IsValidationError reports whether err was raised by request validation
// rather than by the platform.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsConflict checks if the error reports an existing entity, e.g. a create
// without overwrite.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}
