package log

import (
	"context"
)

type contextFieldsKey struct{}

// AppendContextFields returns a copy of ctx which carries the given fields in addition to the ones
// already attached. Every log call with that context writes them into the "context" section.
func AppendContextFields(ctx context.Context, fields map[string]any) context.Context {
	existing := ContextFields(ctx)

	return context.WithValue(ctx, contextFieldsKey{}, mergeFields(existing, fields))
}

func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return map[string]any{}
	}

	if fields, ok := ctx.Value(contextFieldsKey{}).(map[string]any); ok {
		return fields
	}

	return map[string]any{}
}
