package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/faas-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/faas-client/internal/http"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// mapError converts a transport failure into a *faas.APIError. Responses
// with an error status keep their status and body; anything else becomes a
// generic error without status code.
func mapError(err error) error {
	statusErr := &internalhttp.StatusError{}
	if errors.As(err, &statusErr) {
		return &faas.APIError{
			Message: fmt.Sprintf("%s %s Returned HTTP %d (%s) --> \"%s\"",
				statusErr.Method, statusErr.URL, statusErr.StatusCode,
				http.StatusText(statusErr.StatusCode), errorDetail(statusErr.Body)),
			StatusCode: statusErr.StatusCode,
			Method:     statusErr.Method,
			URL:        statusErr.URL,
			Body:       statusErr.Body,
		}
	}

	return faas.NewAPIError(constants.UnknownErrorPrefix+err.Error(), err)
}

// errorDetail extracts the most specific message from an error body. Failed
// blocking invocations nest the action's error under response.result.
func errorDetail(body []byte) string {
	var document map[string]interface{}

	if len(body) == 0 || json.Unmarshal(body, &document) != nil {
		return constants.MissingErrorMessage
	}

	if message, ok := document["error"].(string); ok {
		return message
	}

	result := nested(document, "response", "result")

	switch actionErr := result["error"].(type) {
	case string:
		return actionErr
	case map[string]interface{}:
		if message, ok := actionErr["error"].(string); ok {
			return message
		}

		if code, ok := actionErr["statusCode"]; ok && code != nil {
			return fmt.Sprintf("application error, status code: %v", code)
		}
	}

	return constants.MissingErrorMessage
}

func nested(document map[string]interface{}, keys ...string) map[string]interface{} {
	current := document

	for _, key := range keys {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return nil
		}

		current = next
	}

	return current
}
