package faas_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	options := faas.Options{"name": "hello", "blocking": true, "limit": 10, "params": map[string]string{"a": "b"}, "nil": nil}

	assert.True(t, options.Has("nil"))
	assert.False(t, options.Has("missing"))

	name, ok := options.String("name")
	assert.True(t, ok)
	assert.Equal(t, "hello", name)

	_, ok = options.String("limit")
	assert.False(t, ok)

	assert.True(t, options.Bool("blocking"))
	assert.False(t, options.Bool("name"))
	assert.False(t, options.Bool("missing"))

	params, present, ok := options.Mapping("params")
	assert.True(t, present)
	assert.True(t, ok)
	assert.Equal(t, map[string]interface{}{"a": "b"}, params)

	_, present, ok = options.Mapping("name")
	assert.True(t, present)
	assert.False(t, ok)

	_, present, _ = options.Mapping("missing")
	assert.False(t, present)

	for _, value := range []interface{}{nil, map[string]interface{}(nil), faas.Options(nil)} {
		mapping, present, ok := faas.Options{"params": value}.Mapping("params")
		assert.Nil(t, mapping)
		assert.False(t, present)
		assert.True(t, ok)
	}

	clone := options.Clone()
	clone["name"] = "changed"
	assert.Equal(t, "hello", options["name"])
}

func TestAsMapping(t *testing.T) {
	t.Parallel()

	for _, value := range []interface{}{
		faas.Options{"a": 1},
		map[string]interface{}{"a": 1},
	} {
		mapping, ok := faas.AsMapping(value)
		require.True(t, ok)
		assert.Equal(t, map[string]interface{}{"a": 1}, mapping)
	}

	for _, value := range []interface{}{nil, "a=1", []string{"a"}, map[int]string{1: "a"}} {
		_, ok := faas.AsMapping(value)
		assert.False(t, ok)
	}
}

func TestPairs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []faas.KeyValue{
		{Key: "a", Value: 1},
		{Key: "b", Value: "x"},
		{Key: "c", Value: nil},
	}, faas.Pairs(map[string]interface{}{"c": nil, "a": 1, "b": "x"}))

	assert.Empty(t, faas.Pairs(nil))
}

func TestPairs_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("pairs hold every entry once, sorted by key", prop.ForAll(
		func(keys []string) bool {
			mapping := map[string]interface{}{}
			for i, key := range keys {
				mapping[key] = i
			}

			pairs := faas.Pairs(mapping)
			if len(pairs) != len(mapping) {
				return false
			}

			sorted := sort.SliceIsSorted(pairs, func(i, j int) bool {
				return pairs[i].Key < pairs[j].Key
			})
			if !sorted {
				return false
			}

			for _, pair := range pairs {
				if mapping[pair.Key] != pair.Value {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}

func TestInput_Normalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, faas.Options{"name": "/ns/hello"}, faas.ID("/ns/hello").Normalize("name"))
	assert.Equal(t, faas.Options{}, faas.Opts(nil).Normalize("name"))
	assert.Equal(t, faas.Options{}, faas.Input{}.Normalize("name"))

	original := faas.Options{"actionName": "hello"}
	normalized := faas.Opts(original).Normalize("name")
	normalized["params"] = map[string]interface{}{}
	assert.Equal(t, faas.Options{"actionName": "hello"}, original)
}

func TestInput_Kinds(t *testing.T) {
	t.Parallel()

	id := faas.ID("hello")
	assert.Equal(t, faas.InputID, id.Kind())
	assert.Equal(t, "hello", id.Identifier())

	opts := faas.Opts(faas.Options{"name": "x"})
	assert.Equal(t, faas.InputOptions, opts.Kind())
	assert.Equal(t, faas.Options{"name": "x"}, opts.Options())

	assert.Equal(t, faas.InputOptions, faas.Input{}.Kind())

	batch := faas.IDs("a", "b")
	assert.Equal(t, faas.InputBatch, batch.Kind())
	require.Len(t, batch.Items(), 2)
	assert.Equal(t, "b", batch.Items()[1].Identifier())

	nested := faas.Batch(faas.ID("a"), faas.Batch(opts))
	assert.Equal(t, faas.InputBatch, nested.Items()[1].Kind())
}

func TestResult(t *testing.T) {
	t.Parallel()

	result := &faas.Result{Body: []byte(`{"name":"hello"}`)}
	assert.False(t, result.IsBatch())

	mapping, err := result.Map()
	require.NoError(t, err)
	assert.Equal(t, "hello", mapping["name"])

	empty := &faas.Result{}

	var target struct{ Name string }

	require.NoError(t, empty.Decode(&target))
	assert.Empty(t, target.Name)

	_, err = (&faas.Result{Body: []byte(`[1]`)}).Map()
	require.Error(t, err)

	assert.True(t, (&faas.Result{Items: []*faas.Result{}}).IsBatch())
}
