package validator

import (
	"strconv"
	"strings"
)

// FormatMessage renders a failure template.
// Placeholder {0} is replaced with the display name and {1} with the raw rule
// argument, e.g. "2-10" for a Length rule.
func FormatMessage(template, displayName, argument string) string {
	return FormatPositional(template, displayName, argument)
}

// FormatPositional substitutes {n} placeholders with args[n].
// Doubled braces ("{{", "}}") produce literal braces. Placeholders with an
// index outside args or a non-numeric body are copied verbatim.
func FormatPositional(template string, args ...string) string {
	if !strings.ContainsAny(template, "{}") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				b.WriteString(template[i:])
				return b.String()
			}
			if idx, ok := placeholderIndex(template[i+1 : i+1+end]); ok && idx < len(args) {
				b.WriteString(args[idx])
				i += end + 1
				continue
			}
			b.WriteByte(c)
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i++
			}
			b.WriteByte('}')
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func placeholderIndex(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(token)
	return idx, err == nil
}

// DisplayName resolves the label of field, falling back to the probe key itself.
func DisplayName(lookup Lookup, field string) string {
	key := DisplayNameKey(field)
	if name, ok := lookup.Get(key); ok {
		return name
	}
	return key
}

// renderMessage produces the caller-facing text of a failed rule.
// A missing template degrades to the raw message key.
func renderMessage(lookup Lookup, field string, def RuleDefinition) string {
	if !def.HasTemplate {
		return def.MessageKey
	}
	return FormatMessage(def.Message, DisplayName(lookup, field), def.Argument)
}
