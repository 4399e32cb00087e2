package faas

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/faas-client/internal/constants"
)

// RequestEvent describes one completed request. It is published as JSON on
// "faas.requests.<resource>".
type RequestEvent struct {
	ID         string    `json:"id"`
	Time       time.Time `json:"time"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Resource   string    `json:"resource"`
	StatusCode int       `json:"status_code"`
	Error      string    `json:"error,omitempty"`
}

// NATSPublisher publishes a RequestEvent for every response it observes.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
	logger Logger
}

// NewNATSPublisher creates a publisher on an established connection.
func NewNATSPublisher(conn *nats.Conn, logger Logger) *NATSPublisher {
	return &NATSPublisher{
		conn:   conn,
		prefix: constants.EventSubjectPrefix,
		logger: logger,
	}
}

// ConnectNATS dials url and returns a publisher owning the connection.
func ConnectNATS(url string, logger Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name(constants.DefaultUserAgent))
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return NewNATSPublisher(conn, logger), nil
}

// Subject returns the subject events for resource are published on.
func (p *NATSPublisher) Subject(resource string) string {
	return p.prefix + resource
}

// Interceptor returns the response interceptor publishing the events.
// Publish failures are logged and never fail the request.
func (p *NATSPublisher) Interceptor() ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		event := p.event(req, resp)

		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encoding request event: %w", err)
		}

		err = p.conn.Publish(p.Subject(event.Resource), data)
		if err != nil && p.logger != nil {
			p.logger.Warn("Failed to publish request event", map[string]interface{}{
				"subject": p.Subject(event.Resource),
				"error":   err.Error(),
			})
		}

		return nil
	}
}

func (p *NATSPublisher) event(req *Request, resp *Response) RequestEvent {
	event := RequestEvent{
		Time:       time.Now().UTC(),
		Method:     req.Method,
		Path:       req.Path,
		Resource:   ResourceOf(req.Path),
		StatusCode: resp.StatusCode,
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	event.ID = id.String()

	if resp.Error != nil {
		event.Error = resp.Error.Error()
	}

	return event
}

// Flush waits for published events to reach the server.
func (p *NATSPublisher) Flush() error {
	err := p.conn.Flush()
	if err != nil {
		return fmt.Errorf("flushing NATS connection: %w", err)
	}

	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() error {
	err := p.conn.Drain()
	if err != nil {
		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}

// ResourceOf returns the resource family a request path addresses:
// "namespaces/_/actions/hello" is "actions", "namespaces/_" is "namespaces"
// and gateway management paths are "routes".
func ResourceOf(path string) string {
	path = strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}

	segments := strings.Split(path, "/")

	switch {
	case segments[0] == "namespaces" && len(segments) >= 3:
		return segments[2]
	case segments[0] == "namespaces":
		return "namespaces"
	case segments[0] == "web" || segments[0] == "experimental":
		return "routes"
	default:
		return segments[0]
	}
}
