package client

import (
	"fmt"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// TriggersClient implements faas.TriggersClient. Invoke fires the trigger.
type TriggersClient struct {
	*resources
}

// NewTriggersClient creates a new triggers client.
func NewTriggersClient(req *requester) *TriggersClient {
	return &TriggersClient{
		resources: newResources(req, resourceSpec{
			name:        "triggers",
			identifiers: []string{"triggerName", primaryKey},
			listQuery:   []string{"skip", "limit", "count"},
			createQuery: []string{"overwrite"},
			createBody:  triggerBody,
		}),
	}
}

func triggerBody(options faas.Options) (interface{}, error) {
	body := map[string]interface{}{}

	trigger, present, ok := options.Mapping("trigger")
	if present {
		if !ok {
			return nil, fmt.Errorf("%w: trigger must be a mapping, got %T", faas.ErrInvalidPayloadType, options["trigger"])
		}

		for key, value := range trigger {
			body[key] = value
		}
	}

	annotations, present, err := pairs(options, "annotations")
	if err != nil {
		return nil, err
	}

	if present {
		body["annotations"] = annotations
	}

	return body, nil
}
