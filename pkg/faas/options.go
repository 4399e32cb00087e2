package faas

import "sort"

// Options carries the per-call request options. Recognised keys depend on the
// resource: an identifier under one of the resource's accepted aliases
// ("name", "actionName", "ruleName", "triggerName", "packageName", ...),
// an optional "namespace" override and resource specific payload fields such
// as "action", "params", "annotations", "limits", "version", "trigger",
// "package" or "sequence".
//
// A namespace embedded in a "/namespace/..." identifier takes precedence over
// the "namespace" key.
type Options map[string]interface{}

// Has reports whether key is present, whatever its value.
func (o Options) Has(key string) bool {
	_, ok := o[key]

	return ok
}

// String returns the value of key if it is a string.
func (o Options) String(key string) (string, bool) {
	value, ok := o[key].(string)

	return value, ok
}

// Bool returns the value of key if it is a bool.
func (o Options) Bool(key string) bool {
	value, ok := o[key].(bool)

	return ok && value
}

// Clone returns a shallow copy of the options.
func (o Options) Clone() Options {
	clone := make(Options, len(o)+1)
	for key, value := range o {
		clone[key] = value
	}

	return clone
}

// Mapping returns the value of key as a string keyed mapping. The second
// result is false if the key is absent or nil; the third is false if the key
// is present but not a mapping.
func (o Options) Mapping(key string) (map[string]interface{}, bool, bool) {
	value, present := o[key]
	if !present || value == nil {
		return nil, false, true
	}

	mapping, ok := AsMapping(value)
	if ok && mapping == nil {
		return nil, false, true
	}

	return mapping, true, ok
}

// AsMapping converts the mapping shapes accepted by the library into a plain map.
func AsMapping(value interface{}) (map[string]interface{}, bool) {
	switch typed := value.(type) {
	case Options:
		return map[string]interface{}(typed), true
	case map[string]interface{}:
		return typed, true
	case map[string]string:
		mapping := make(map[string]interface{}, len(typed))
		for key, val := range typed {
			mapping[key] = val
		}

		return mapping, true
	default:
		return nil, false
	}
}

// KeyValue is the wire shape of parameters and annotations.
type KeyValue struct {
	Key   string      `json:"key"   yaml:"key"`
	Value interface{} `json:"value" yaml:"value"`
}

// Pairs converts a mapping into key/value pairs ordered by key.
func Pairs(mapping map[string]interface{}) []KeyValue {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]KeyValue, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, KeyValue{Key: key, Value: mapping[key]})
	}

	return pairs
}
