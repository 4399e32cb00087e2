package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// namedInput builds the input for one or more entity names sharing options.
// Several names fan out as a batch.
func namedInput(names []string, options faas.Options) faas.Input {
	items := make([]faas.Input, 0, len(names))

	for _, name := range names {
		item := options.Clone()
		item["name"] = name
		items = append(items, faas.Opts(item))
	}

	if len(items) == 1 {
		return items[0]
	}

	return faas.Batch(items...)
}

// keyValues parses KEY=VALUE pairs. Values that are valid JSON are decoded,
// anything else is kept as a string.
func keyValues(pairs []string) (map[string]interface{}, error) {
	mapping := make(map[string]interface{}, len(pairs))

	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKeyValue, pair)
		}

		var value interface{}

		err := json.Unmarshal([]byte(raw), &value)
		if err != nil {
			value = raw
		}

		mapping[key] = value
	}

	return mapping, nil
}

// addParamFlags registers the repeatable --param and --annotation flags.
func addParamFlags(cmd *cobra.Command, annotations bool) {
	cmd.Flags().StringArrayP("param", "p", nil, "parameter as KEY=VALUE (repeatable)")

	if annotations {
		cmd.Flags().StringArrayP("annotation", "a", nil, "annotation as KEY=VALUE (repeatable)")
	}
}

// mappingFlag stores the KEY=VALUE pairs of flag under key, if any were given.
func mappingFlag(cmd *cobra.Command, flag, key string, options faas.Options) error {
	if cmd.Flags().Lookup(flag) == nil {
		return nil
	}

	pairs, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		return fmt.Errorf("reading --%s: %w", flag, err)
	}

	if len(pairs) == 0 {
		return nil
	}

	mapping, err := keyValues(pairs)
	if err != nil {
		return err
	}

	options[key] = mapping

	return nil
}

// paramOptions collects --param as "params" and --annotation as "annotations".
func paramOptions(cmd *cobra.Command) (faas.Options, error) {
	options := faas.Options{}

	err := mappingFlag(cmd, "param", "params", options)
	if err != nil {
		return nil, err
	}

	err = mappingFlag(cmd, "annotation", "annotations", options)
	if err != nil {
		return nil, err
	}

	return options, nil
}

// listOptions copies the --limit and --skip flags into options when set.
func listOptions(cmd *cobra.Command, options faas.Options) faas.Options {
	for _, name := range []string{"limit", "skip"} {
		if cmd.Flags().Changed(name) {
			value, _ := cmd.Flags().GetInt(name)
			options[name] = value
		}
	}

	return options
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 0, "only return this many entities")
	cmd.Flags().Int("skip", 0, "skip this many entities from the head of the collection")
}
