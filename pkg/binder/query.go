package binder

import "net/http"

// Query binds URL query parameters into fields tagged `query:"name"`.
// Untagged fields are left to other binders.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", true, r.URL.Query(), ErrFailedToParseQuery)
	}
}
