package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Schema records a record schema name under "schema".
func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

// Field records a record field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a validation rule descriptor under "rule". Non-string rules
// are rendered with their Go type so func values stay readable.
func Rule(rule any) slog.Attr {
	switch r := rule.(type) {
	case nil:
		return slog.Attr{}
	case string:
		return slog.String("rule", r)
	case []string:
		return slog.Any("rule", r)
	}
	return slog.String("rule", fmt.Sprintf("%T", rule))
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
