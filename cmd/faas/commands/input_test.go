package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

func TestNamedInput(t *testing.T) {
	t.Parallel()

	options := faas.Options{"blocking": true}

	single := namedInput([]string{"hello"}, options)
	assert.Equal(t, faas.Opts(faas.Options{"name": "hello", "blocking": true}), single)

	batch := namedInput([]string{"a", "b"}, options)
	assert.Equal(t, faas.Batch(
		faas.Opts(faas.Options{"name": "a", "blocking": true}),
		faas.Opts(faas.Options{"name": "b", "blocking": true}),
	), batch)

	assert.NotContains(t, options, "name")
}

func TestKeyValues(t *testing.T) {
	t.Parallel()

	mapping, err := keyValues([]string{
		"count=3",
		"enabled=true",
		"name=world",
		"list=[1,2]",
		"expr=a=b",
		"empty=",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"count":   float64(3),
		"enabled": true,
		"name":    "world",
		"list":    []interface{}{float64(1), float64(2)},
		"expr":    "a=b",
		"empty":   "",
	}, mapping)

	for _, pair := range []string{"novalue", "=value"} {
		_, err := keyValues([]string{pair})
		require.ErrorIs(t, err, ErrInvalidKeyValue, pair)
	}
}

func TestParamOptions(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	addParamFlags(cmd, true)
	addListFlags(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"-p", "a=1", "--param", "b=x", "-a", "web-export=true", "--limit", "5"}))

	options, err := paramOptions(cmd)
	require.NoError(t, err)
	assert.Equal(t, faas.Options{
		"params":      map[string]interface{}{"a": float64(1), "b": "x"},
		"annotations": map[string]interface{}{"web-export": true},
	}, options)

	assert.Equal(t, faas.Options{"limit": 5}, listOptions(cmd, faas.Options{}))
}

func TestParamOptions_NoFlags(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	addParamFlags(cmd, false)

	options, err := paramOptions(cmd)
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestMaskKey(t *testing.T) {
	t.Parallel()

	assert.Empty(t, maskKey(""))
	assert.Equal(t, "uuid:****", maskKey("uuid:secret"))
	assert.Equal(t, "****", maskKey("token"))
}

func TestFeedParameters(t *testing.T) {
	t.Parallel()

	trigger := map[string]interface{}{
		"parameters": faas.Pairs(map[string]interface{}{"cron": "* * * * *", "count": 2}),
	}

	assert.Equal(t, map[string]interface{}{"cron": "* * * * *", "count": 2}, feedParameters(trigger))
	assert.Empty(t, feedParameters(map[string]interface{}{}))
}
