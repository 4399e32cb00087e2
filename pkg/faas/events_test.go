package faas_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

func startTestNATS(t *testing.T) *natsserver.Server {
	t.Helper()

	ns, err := natsserver.NewServer(&natsserver.Options{
		Host:   "127.0.0.1",
		Port:   -1,
		NoLog:  true,
		NoSigs: true,
	})
	require.NoError(t, err)

	go ns.Start()

	if !ns.ReadyForConnections(5 * time.Second) {
		t.Fatal("NATS server not ready")
	}

	t.Cleanup(ns.Shutdown)

	return ns
}

func TestResourceOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "namespaces", want: "namespaces"},
		{path: "namespaces/team", want: "namespaces"},
		{path: "namespaces/_/actions", want: "actions"},
		{path: "/namespaces/_/actions/pkg/hello?blocking=true", want: "actions"},
		{path: "namespaces/_/activations/abc/logs", want: "activations"},
		{path: "web/whisk.system/apimgmt/getApi.http", want: "routes"},
		{path: "experimental/web/whisk.system/routemgmt/createApi.json", want: "routes"},
		{path: "other/path", want: "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, faas.ResourceOf(tt.path), tt.path)
	}
}

func TestNATSPublisher(t *testing.T) {
	t.Parallel()

	ns := startTestNATS(t)

	publisher, err := faas.ConnectNATS(ns.ClientURL(), nil)
	require.NoError(t, err)

	t.Cleanup(func() { _ = publisher.Close() })

	assert.Equal(t, "faas.requests.actions", publisher.Subject("actions"))

	sub, err := nats.Connect(ns.ClientURL())
	require.NoError(t, err)

	t.Cleanup(sub.Close)

	messages := make(chan *nats.Msg, 4)
	subscription, err := sub.ChanSubscribe("faas.requests.>", messages)
	require.NoError(t, err)

	t.Cleanup(func() { _ = subscription.Unsubscribe() })
	require.NoError(t, sub.Flush())

	interceptor := publisher.Interceptor()
	ctx := context.Background()

	err = interceptor(ctx, &faas.Request{Method: http.MethodPost, Path: "namespaces/_/actions/hello"}, &faas.Response{StatusCode: http.StatusAccepted})
	require.NoError(t, err)

	err = interceptor(ctx, &faas.Request{Method: http.MethodGet, Path: "namespaces"}, &faas.Response{Error: errors.New("connection refused")})
	require.NoError(t, err)

	require.NoError(t, publisher.Flush())

	first := receive(t, messages)
	assert.Equal(t, "faas.requests.actions", first.Subject)

	var event faas.RequestEvent

	require.NoError(t, json.Unmarshal(first.Data, &event))
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, http.MethodPost, event.Method)
	assert.Equal(t, "namespaces/_/actions/hello", event.Path)
	assert.Equal(t, "actions", event.Resource)
	assert.Equal(t, http.StatusAccepted, event.StatusCode)
	assert.Empty(t, event.Error)

	second := receive(t, messages)
	assert.Equal(t, "faas.requests.namespaces", second.Subject)

	require.NoError(t, json.Unmarshal(second.Data, &event))
	assert.Equal(t, "connection refused", event.Error)
	assert.Zero(t, event.StatusCode)
}

func TestNATSPublisher_ClosedConnection(t *testing.T) {
	t.Parallel()

	ns := startTestNATS(t)

	conn, err := nats.Connect(ns.ClientURL())
	require.NoError(t, err)

	logger := &recordingLogger{}
	publisher := faas.NewNATSPublisher(conn, logger)

	conn.Close()

	err = publisher.Interceptor()(context.Background(), &faas.Request{Method: http.MethodGet, Path: "namespaces"}, &faas.Response{StatusCode: http.StatusOK})
	require.NoError(t, err)
	assert.Equal(t, []string{"warn: Failed to publish request event"}, logger.all())
}

func TestConnectNATS_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := faas.ConnectNATS("nats://127.0.0.1:1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to NATS")
}

func receive(t *testing.T, messages <-chan *nats.Msg) *nats.Msg {
	t.Helper()

	select {
	case msg := <-messages:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")

		return nil
	}
}
