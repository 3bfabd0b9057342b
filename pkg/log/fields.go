package log

import (
	"fmt"
	"reflect"
	"time"
)

func mergeFields(receiver map[string]any, input map[string]any) map[string]any {
	newMap := make(map[string]any, len(receiver)+len(input))

	for k, v := range receiver {
		newMap[k] = prepareForLog(v)
	}

	for k, v := range input {
		newMap[k] = prepareForLog(v)
	}

	return newMap
}

func prepareForLog(v any) any {
	switch t := v.(type) {
	case error:
		// encoding/json drops plain errors
		return t.Error()
	case time.Time:
		return v
	case fmt.Stringer:
		return t.String()
	case map[string]any:
		return mergeFields(t, nil)
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}

		return prepareForLog(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}

		newArray := make([]any, rv.Len())
		for i := range newArray {
			newArray[i] = prepareForLog(rv.Index(i).Interface())
		}

		return newArray
	default:
		return v
	}
}
