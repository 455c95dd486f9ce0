package i18n

import (
	"maps"
	"net/http"
)

// LangExtractor is a function type that extracts language information from an HTTP request.
// It takes an *http.Request as input and returns a string representing the language code.
type LangExtractor func(r *http.Request) string

// Resources is the loaded store: language, then section, then key.
// A section is the unit a validator probes, e.g. "account".
type Resources map[string]map[string]map[string]string

// Set stores value, creating intermediate maps as needed.
func (r Resources) Set(lang, section, key, value string) {
	sections, ok := r[lang]
	if !ok {
		sections = make(map[string]map[string]string)
		r[lang] = sections
	}
	keys, ok := sections[section]
	if !ok {
		keys = make(map[string]string)
		sections[section] = keys
	}
	keys[key] = value
}

// Merge copies every entry of src into r. Later entries win.
func (r Resources) Merge(src Resources) {
	for lang, sections := range src {
		for section, keys := range sections {
			for key, value := range keys {
				r.Set(lang, section, key, value)
			}
		}
	}
}

// Clone returns a deep copy.
func (r Resources) Clone() Resources {
	out := make(Resources, len(r))
	for lang, sections := range r {
		out[lang] = make(map[string]map[string]string, len(sections))
		for section, keys := range sections {
			out[lang][section] = maps.Clone(keys)
		}
	}
	return out
}

// Len returns the number of stored values across all languages and sections.
func (r Resources) Len() int {
	n := 0
	for _, sections := range r {
		for _, keys := range sections {
			n += len(keys)
		}
	}
	return n
}
