package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/faas-client/internal/constants"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// ActionsClient implements faas.ActionsClient.
type ActionsClient struct {
	*resources
}

// NewActionsClient creates a new actions client.
func NewActionsClient(req *requester) *ActionsClient {
	return &ActionsClient{
		resources: newResources(req, resourceSpec{
			name:        "actions",
			identifiers: []string{"actionName", primaryKey},
			listQuery:   []string{"skip", "limit", "count"},
			getQuery:    []string{"code"},
			invokeQuery: []string{"blocking"},
			createQuery: []string{"overwrite"},
			createBody:  actionBody,
		}),
	}
}

// Invoke invokes one action per input. With both "blocking" and "result"
// set, only the result document of the activation is returned.
func (c *ActionsClient) Invoke(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return c.perform(ctx, "invoking", in, func(options faas.Options) (*call, error) {
		invocation, err := c.invokeCall(options)
		if err != nil {
			return nil, err
		}

		if options.Bool("blocking") && options.Bool("result") {
			invocation.extract = activationResult
		}

		return invocation, nil
	})
}

func activationResult(body json.RawMessage) (json.RawMessage, error) {
	var activation struct {
		Response struct {
			Result json.RawMessage `json:"result"`
		} `json:"response"`
	}

	err := json.Unmarshal(body, &activation)
	if err != nil {
		return nil, fmt.Errorf("parsing activation: %w", err)
	}

	return activation.Response.Result, nil
}

// actionBody derives the create/update body of an action from either
// "action" (code, binary code or a ready document) or "sequence".
func actionBody(options faas.Options) (interface{}, error) {
	action, hasAction := options["action"]
	sequence, hasSequence := options["sequence"]

	switch {
	case hasAction && hasSequence:
		return nil, faas.ErrInvalidOptionsParameters
	case !hasAction && !hasSequence:
		return nil, faas.ErrMissingActionBody
	}

	document := &faas.ActionDocument{}

	if hasSequence {
		components, ok := sequenceComponents(sequence)
		if !ok {
			return nil, fmt.Errorf("%w, got %v", faas.ErrInvalidSequenceParameter, sequence)
		}

		document.Exec = faas.Exec{Kind: constants.SequenceKind, Components: components}
	} else {
		kind, _ := options.String("kind")
		if kind == "" {
			kind = constants.DefaultActionKind
		}

		switch code := action.(type) {
		case string:
			document.Exec = faas.Exec{Kind: kind, Code: code}
		case []byte:
			document.Exec = faas.Exec{Kind: kind, Code: base64.StdEncoding.EncodeToString(code)}
		case nil:
			return nil, faas.ErrMissingActionBody
		default:
			return structuredAction(action)
		}
	}

	err := decorate(document, options)
	if err != nil {
		return nil, err
	}

	return document, nil
}

func structuredAction(action interface{}) (interface{}, error) {
	switch action.(type) {
	case faas.Options, map[string]interface{}, faas.ActionDocument, *faas.ActionDocument, json.RawMessage:
		return action, nil
	default:
		return nil, fmt.Errorf("%w: action must be code, binary code or a document, got %T", faas.ErrInvalidPayloadType, action)
	}
}

func sequenceComponents(sequence interface{}) ([]interface{}, bool) {
	var components []interface{}

	switch typed := sequence.(type) {
	case []string:
		for _, component := range typed {
			components = append(components, component)
		}
	case []interface{}:
		components = typed
	default:
		return nil, false
	}

	return components, len(components) > 0
}

func decorate(document *faas.ActionDocument, options faas.Options) error {
	params, _, err := pairs(options, "params")
	if err != nil {
		return err
	}

	annotations, _, err := pairs(options, "annotations")
	if err != nil {
		return err
	}

	document.Parameters = params
	document.Annotations = annotations
	document.Limits = options["limits"]
	document.Version = options["version"]

	return nil
}
