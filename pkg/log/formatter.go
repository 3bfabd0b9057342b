package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

type Formatter func(timestamp string, level int, format string, args []any, err error, data Data) ([]byte, error)

var formatters = map[string]Formatter{
	"console": FormatterConsole,
	"json":    FormatterJson,
}

func FormatterConsole(timestamp string, level int, format string, args []any, err error, data Data) ([]byte, error) {
	fieldString := getFieldsAsString(data.Fields)
	contextString := getFieldsAsString(data.ContextFields)

	errStr := ""
	if err != nil {
		errStr = fmt.Sprintf("ERR: %s", err.Error())
	}

	output := fmt.Sprintf("%s %s %s %-50s %s %s %s",
		color.YellowString(fmt.Sprintf("%-15v", timestamp)),
		color.GreenString(fmt.Sprintf("%-7s", data.Channel)),
		color.GreenString(fmt.Sprintf("%-7v", LevelName(level))),
		fmt.Sprintf(format, args...),
		color.GreenString(contextString),
		color.BlueString(fieldString),
		color.RedString(errStr),
	)

	return append([]byte(strings.TrimRight(output, " ")), '\n'), nil
}

func FormatterJson(timestamp string, level int, format string, args []any, err error, data Data) ([]byte, error) {
	jsn := make(map[string]any, 8)

	if err != nil {
		jsn["err"] = err.Error()
	}

	jsn["channel"] = data.Channel
	jsn["level"] = level
	jsn["level_name"] = LevelName(level)
	jsn["timestamp"] = timestamp
	jsn["message"] = fmt.Sprintf(format, args...)
	jsn["fields"] = data.Fields
	jsn["context"] = data.ContextFields

	serialized, marshalErr := json.Marshal(jsn)
	if marshalErr != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON: %w", marshalErr)
	}

	return append(serialized, '\n'), nil
}

func getFieldsAsString(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fieldParts := make([]string, 0, len(fields))
	for _, k := range keys {
		fieldParts = append(fieldParts, fmt.Sprintf("%v: %v", k, fields[k]))
	}

	return strings.Join(fieldParts, ", ")
}
