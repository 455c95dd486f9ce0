package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/resxkit/pkg/binder"
	"github.com/dmitrymomot/resxkit/pkg/validator"
)

// JSONResponse is the envelope of every JSON body.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field names to
// validation messages.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithJSONMeta sets the meta object.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// WithJSONMessage replaces the error message, e.g. with a translated one.
func WithJSONMessage(message string) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Error != nil && message != "" {
			r.body.Error.Message = message
		}
	}
}

// JSON renders v as data with status 200. Errors are rendered as JSONError.
func JSON(v any, opts ...JSONOption) Response {
	if err, ok := v.(error); ok {
		return JSONError(err, opts...)
	}
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as an error envelope with a status derived from it.
func JSONError(err error, opts ...JSONOption) Response {
	status, detail := ErrorToDetail(err)
	r := &jsonResponse{status: status, body: JSONResponse{Error: detail}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ErrorToDetail classifies err:
//   - validator.ValidationErrors: 422 "validation_error" with per-field details
//   - unsupported or missing content type: 415
//   - other binding failures: 400
//   - HTTPError: its own code and key
//   - anything else: 500 "internal_server_error", without leaking err text
func ErrorToDetail(err error) (int, *ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: "Validation failed",
			Details: verrs.Map(),
		}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return httpErrorDetail(ErrUnsupportedMediaType)
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrFailedToParsePath):
		return http.StatusBadRequest, &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErrorDetail(httpErr)
	}
	return httpErrorDetail(ErrInternalServerError)
}

func httpErrorDetail(e HTTPError) (int, *ErrorDetail) {
	return e.Code, &ErrorDetail{Code: e.Key, Message: http.StatusText(e.Code)}
}
