package faas_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

func TestAPIError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := faas.NewAPIError("Unknown Error From API: connection refused", cause)

	assert.Equal(t, "Unknown Error From API: connection refused", err.Error())
	assert.Zero(t, err.StatusCode)
	assert.ErrorIs(t, err, cause)
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	wrap := func(status int) error {
		return fmt.Errorf("getting actions: %w", &faas.APIError{StatusCode: status, Message: http.StatusText(status)})
	}

	assert.True(t, faas.IsNotFound(wrap(http.StatusNotFound)))
	assert.True(t, faas.IsUnauthorized(wrap(http.StatusUnauthorized)))
	assert.True(t, faas.IsForbidden(wrap(http.StatusForbidden)))
	assert.True(t, faas.IsConflict(wrap(http.StatusConflict)))
	assert.False(t, faas.IsNotFound(wrap(http.StatusConflict)))

	assert.Equal(t, http.StatusBadGateway, faas.StatusCode(wrap(http.StatusBadGateway)))
	assert.Zero(t, faas.StatusCode(errors.New("plain")))
	assert.Zero(t, faas.StatusCode(nil))
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, faas.IsValidationError(fmt.Errorf("creating rules: %w", faas.ErrMissingRuleAction)))
	assert.True(t, faas.IsValidationError(fmt.Errorf("%w: %q", faas.ErrInvalidResourceIdentifier, "/ns")))
	assert.True(t, faas.IsValidationError(faas.ErrOperationNotSupported))
	assert.False(t, faas.IsValidationError(&faas.APIError{StatusCode: http.StatusBadRequest}))
	assert.False(t, faas.IsValidationError(faas.ErrMissingAPIKey))
	assert.False(t, faas.IsValidationError(nil))
}
