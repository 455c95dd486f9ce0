package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory bounds the in-memory part of multipart forms.
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// fields using `form` tags. Untagged exported fields match their lowercased
// name and `form:"-"` skips a field. File parts are ignored.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}

		var values map[string][]string
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value
		default:
			return fmt.Errorf("%w: got %s, expected a form", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", false, values, ErrFailedToParseForm)
	}
}

// Body picks JSON or Form from the request content type, so one endpoint can
// serve both API clients and plain HTML forms. A request without a body is
// ErrNotApplicable.
func Body() func(r *http.Request, v any) error {
	jsonBinder, formBinder := JSON(), Form()
	return func(r *http.Request, v any) error {
		if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
			return ErrNotApplicable
		}
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}
		if mediaType == "application/json" {
			return jsonBinder(r, v)
		}
		return formBinder(r, v)
	}
}
