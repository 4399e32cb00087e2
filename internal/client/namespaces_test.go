package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

func TestNamespacesClient(t *testing.T) {
	t.Parallel()

	server, rec := startServer(t, func(req recordedRequest) (int, string) {
		return http.StatusOK, `["_","team"]`
	})
	client := newTestClient(t, server)
	ctx := context.Background()

	result, err := client.Namespaces().List(ctx)
	require.NoError(t, err)

	var namespaces []string

	require.NoError(t, result.Decode(&namespaces))
	assert.Equal(t, []string{"_", "team"}, namespaces)

	_, err = client.Namespaces().Get(ctx, faas.ID("team"))
	require.NoError(t, err)

	_, err = client.Namespaces().Get(ctx, faas.Opts(faas.Options{"namespace": "other"}))
	require.NoError(t, err)

	_, err = client.Namespaces().Get(ctx, faas.Opts(nil))
	require.ErrorIs(t, err, faas.ErrMissingResourceIdentifier)

	requests := rec.all()
	require.Len(t, requests, 3)
	assert.Equal(t, "/api/v1/namespaces", requests[0].Path)
	assert.Equal(t, "/api/v1/namespaces/team", requests[1].Path)
	assert.Equal(t, "/api/v1/namespaces/other", requests[2].Path)
}
