package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

func TestPackagesClient(t *testing.T) {
	t.Parallel()

	t.Run("list accepts public", func(t *testing.T) {
		t.Parallel()

		server, rec := startServer(t, nil)
		client := newTestClient(t, server)

		_, err := client.Packages().List(context.Background(), faas.Options{"public": true, "limit": 1, "code": true})
		require.NoError(t, err)

		req := rec.only(t)
		assert.Equal(t, "/api/v1/namespaces/_/packages", req.Path)
		assert.Equal(t, "true", req.Query.Get("public"))
		assert.False(t, req.Query.Has("code"))
	})

	t.Run("create sends the package document", func(t *testing.T) {
		t.Parallel()

		server, rec := startServer(t, nil)
		client := newTestClient(t, server)

		_, err := client.Packages().Create(context.Background(), faas.Opts(faas.Options{
			"packageName": "utils",
			"package":     map[string]interface{}{"publish": true},
		}))
		require.NoError(t, err)

		req := rec.only(t)
		assert.Equal(t, "/api/v1/namespaces/_/packages/utils", req.Path)
		assert.Equal(t, map[string]interface{}{"publish": true}, req.Body)
	})

	t.Run("create without document sends an empty mapping", func(t *testing.T) {
		t.Parallel()

		server, rec := startServer(t, nil)
		client := newTestClient(t, server)

		_, err := client.Packages().Update(context.Background(), faas.ID("utils"))
		require.NoError(t, err)

		req := rec.only(t)
		assert.Equal(t, map[string]interface{}{}, req.Body)
		assert.Equal(t, "true", req.Query.Get("overwrite"))
	})

	t.Run("invoke is not supported", func(t *testing.T) {
		t.Parallel()

		server, rec := startServer(t, nil)
		client := newTestClient(t, server)

		_, err := client.Packages().Invoke(context.Background(), faas.ID("utils"))
		require.ErrorIs(t, err, faas.ErrOperationNotSupported)
		assert.Empty(t, rec.all())
	})
}
