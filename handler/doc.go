// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request struct filled by binders
// from pkg/binder, and returns a Response. JSON and JSONError render the
// {"data", "meta", "error"} envelope; validator.ValidationErrors become a 422
// with per-field messages, binding failures a 400 or 415.
//
//	h := handler.HandlerFunc[handler.Context, RegisterRequest](
//		func(ctx handler.Context, req RegisterRequest) handler.Response {
//			if err := v.ValidateFields(req.fields()...); err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.JSON(result)
//		},
//	)
//	r.Post("/account/registration", handler.Wrap(h,
//		handler.WithBinders[handler.Context, RegisterRequest](binder.Body()),
//		handler.WithErrorHandler[handler.Context, RegisterRequest](handler.NewErrorHandler(log)),
//	))
//
// Context.Lang exposes the language negotiated by i18n.Middleware.
package handler
