package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
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

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the validated field prefix under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a rule keyword, e.g. "MinLength", under the key "rule".
// Accepts any fmt.Stringer so validator.Kind can be passed directly.
func Rule(kind any) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.Any("rule", kind)
}

// Lang records the resolved language under the key "lang".
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Section records the resource section under the key "section".
func Section(name string) slog.Attr {
	return slog.String("section", name)
}

// Source records the resource source name under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}
