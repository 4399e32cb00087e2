package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/faas-client/internal/constants"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// column maps a table header to a top-level field of a listed entity.
type column struct {
	header string
	field  string
}

var (
	entityColumns = []column{
		{header: "Name", field: "name"},
		{header: "Namespace", field: "namespace"},
		{header: "Version", field: "version"},
		{header: "Published", field: "publish"},
	}
	activationColumns = []column{
		{header: "Activation ID", field: "activationId"},
		{header: "Name", field: "name"},
		{header: "Namespace", field: "namespace"},
		{header: "Start", field: "start"},
		{header: "Status Code", field: "statusCode"},
	}
	ruleColumns = []column{
		{header: "Name", field: "name"},
		{header: "Namespace", field: "namespace"},
		{header: "Status", field: "status"},
		{header: "Version", field: "version"},
	}
)

// outputFormat returns the --output value, defaulting to a table on a
// terminal and JSON otherwise.
func outputFormat() string {
	if format := viper.GetString(flagOutput); format != "" {
		return format
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return constants.FormatTable
	}

	return constants.FormatJSON
}

// render writes result in the selected output format.
func render(w io.Writer, result *faas.Result, columns []column) error {
	document, err := decodeResult(result)
	if err != nil {
		return err
	}

	return renderDocument(w, document, columns)
}

// renderDocument writes an already decoded document.
func renderDocument(w io.Writer, document interface{}, columns []column) error {
	switch format := outputFormat(); format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(document)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		return encoder.Encode(document)
	case constants.FormatTable:
		return renderTable(w, document, columns)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOutputFormat, format)
	}
}

// decodeResult turns a result into plain values; a batch becomes a list.
func decodeResult(result *faas.Result) (interface{}, error) {
	if result == nil {
		return nil, nil
	}

	if result.IsBatch() {
		items := make([]interface{}, 0, len(result.Items))

		for _, item := range result.Items {
			document, err := decodeResult(item)
			if err != nil {
				return nil, err
			}

			items = append(items, document)
		}

		return items, nil
	}

	var document interface{}

	err := result.Decode(&document)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return document, nil
}

func renderTable(w io.Writer, document interface{}, columns []column) error {
	table := tablewriter.NewWriter(w)

	switch typed := document.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		table.Header("Property", "Value")

		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			_ = table.Append(key, cell(typed[key]))
		}
	case []interface{}:
		appendRows(table, typed, columns)
	default:
		_, err := fmt.Fprintln(w, cell(typed))

		return err
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func appendRows(table *tablewriter.Table, items []interface{}, columns []column) {
	if len(columns) == 0 {
		table.Header("Value")

		for _, item := range items {
			_ = table.Append(cell(item))
		}

		return
	}

	headers := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, col.header)
	}

	table.Header(headers...)

	for _, item := range items {
		entity, _ := item.(map[string]interface{})

		row := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			value, ok := entity[col.field]
			if !ok {
				row = append(row, constants.NotAvailable)

				continue
			}

			row = append(row, cell(value))
		}

		_ = table.Append(row...)
	}
}

// cell formats a value for a table cell; structured values are compact JSON.
func cell(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return typed
	case nil:
		return ""
	case map[string]interface{}, []interface{}:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}

		return string(encoded)
	default:
		return strings.TrimSpace(fmt.Sprint(typed))
	}
}
