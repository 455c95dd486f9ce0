// Package binder fills request structs from HTTP requests.
//
// Each binder has the signature func(*http.Request, any) error and handles
// one source: JSON bodies, form bodies, query parameters or route parameters.
// handler.Wrap runs them in order, so a struct can mix sources:
//
//	type RulesRequest struct {
//		Section string `path:"section"`
//		Field   string `path:"field"`
//		Culture string `query:"culture"`
//	}
//
//	r.Get("/locale/rules/{section}/{field}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, RulesRequest](binder.Path(chi.URLParam), binder.Query()),
//	))
//
// Values are bound verbatim; nothing is trimmed or rewritten, which keeps
// leading or trailing whitespace visible to validation rules.
package binder
