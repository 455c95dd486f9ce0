package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/resxkit/pkg/validator"
)

// Parser is an interface for parsing resource content from various file formats.
type Parser interface {
	// Parse processes the given content string and returns a nested map structure.
	// The outer map is keyed by language; the inner map holds either sections or
	// keys, depending on the layout the adapter expects.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file extension
	// The extension may or may not include a leading dot (e.g. both "json" and ".json" are valid)
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(getFileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// getFileExtension extracts the extension from a filename
func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}

// sectionDocument converts a parsed lang => section => key document.
func sectionDocument(doc map[string]map[string]any) (Resources, error) {
	res := make(Resources, len(doc))
	for lang, sections := range doc {
		if lang == "" {
			return nil, ErrEmptyLang
		}
		for section, raw := range sections {
			keys, ok := asMap(raw)
			if !ok {
				return nil, fmt.Errorf("%w: section %q of %q must be a map, got %T", ErrInvalidStructure, section, lang, raw)
			}
			flat := make(map[string]string, len(keys))
			if err := flatten("", keys, flat); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", lang, section, err)
			}
			for key, value := range flat {
				res.Set(lang, section, key, value)
			}
		}
	}
	return res, nil
}

// keyDocument converts a parsed lang => key document into a single section.
func keyDocument(section string, doc map[string]map[string]any) (Resources, error) {
	res := make(Resources, len(doc))
	for lang, keys := range doc {
		if lang == "" {
			return nil, ErrEmptyLang
		}
		flat := make(map[string]string, len(keys))
		if err := flatten("", keys, flat); err != nil {
			return nil, fmt.Errorf("%s/%s: %w", lang, section, err)
		}
		if len(flat) == 0 {
			continue
		}
		for key, value := range flat {
			res.Set(lang, section, key, value)
		}
	}
	return res, nil
}

// flatten writes the leaves of m into dst. Nested keys are joined with ".",
// lists are joined with the Values separator so "[Adam, Eve]" reads as "Adam,Eve".
func flatten(prefix string, m map[string]any, dst map[string]string) error {
	for key, raw := range m {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		if nested, ok := asMap(raw); ok {
			if err := flatten(full, nested, dst); err != nil {
				return err
			}
			continue
		}

		if list, ok := raw.([]any); ok {
			items := make([]string, 0, len(list))
			for _, item := range list {
				s, ok := scalarString(item)
				if !ok {
					return fmt.Errorf("%w: list item of %q is %T", ErrInvalidStructure, full, item)
				}
				items = append(items, s)
			}
			dst[full] = strings.Join(items, validator.ValuesSeparator)
			continue
		}

		s, ok := scalarString(raw)
		if !ok {
			return fmt.Errorf("%w: value of %q is %T", ErrInvalidStructure, full, raw)
		}
		dst[full] = s
	}
	return nil
}

// scalarString renders a decoded scalar. A null value becomes "" so that a
// bare "NameRequired:" entry still activates its rule.
func scalarString(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// asMap accepts both map flavours produced by the decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	}
	return nil, false
}
