package binder

import (
	"fmt"
	"net/http"
)

// Path binds route parameters into fields tagged `path:"name"`, reading them
// through extractor, e.g. chi.URLParam.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}
		values := pathValues{r: r, extract: extractor}
		return bindToStruct(v, "path", true, values.collect(v), ErrFailedToParsePath)
	}
}

type pathValues struct {
	r       *http.Request
	extract func(*http.Request, string) string
}

// collect resolves every path-tagged field name of v up front so that
// bindToStruct can treat path parameters like any other value map.
func (p pathValues) collect(v any) map[string][]string {
	out := make(map[string][]string)
	for _, name := range taggedNames(v, "path") {
		if value := p.extract(p.r, name); value != "" {
			out[name] = []string{value}
		}
	}
	return out
}
