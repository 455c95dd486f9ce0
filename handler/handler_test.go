package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/handler"
	"github.com/dmitrymomot/resxkit/pkg/binder"
	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/validator"
)

type greetRequest struct {
	Name    string `json:"name" form:"name"`
	Culture string `json:"-" form:"-" query:"culture"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrap(t *testing.T) {
	t.Parallel()

	greet := handler.HandlerFunc[handler.Context, greetRequest](
		func(ctx handler.Context, req greetRequest) handler.Response {
			return handler.JSON(map[string]string{"hello": req.Name, "culture": req.Culture, "lang": ctx.Lang()})
		},
	)

	t.Run("binds body and query", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](binder.Body(), binder.Query()))
		req := httptest.NewRequest(http.MethodPost, "/?culture=ru", strings.NewReader(`{"name":"Adam"}`))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(i18n.SetLocale(req.Context(), "ru"))
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		body := decode(t, rec)
		assert.Equal(t, map[string]any{"hello": "Adam", "culture": "ru", "lang": "ru"}, body.Data)
	})

	t.Run("skips binders that do not apply", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](binder.Body(), binder.Query()))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?culture=en", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "en", decode(t, rec).Data.(map[string]any)["culture"])
	})

	t.Run("binding error goes to the error handler", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Wrap(greet,
			handler.WithBinders[handler.Context, greetRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.ErrorIs(t, got, binder.ErrMissingContentType)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(handler.HandlerFunc[handler.Context, greetRequest](
			func(handler.Context, greetRequest) handler.Response { return nil },
		))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("default error handler uses HTTPError status", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](
			func(*http.Request, any) error { return handler.ErrNotFound },
		))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()

		var order []string
		mark := func(name string) handler.Decorator[handler.Context, greetRequest] {
			return func(next handler.HandlerFunc[handler.Context, greetRequest]) handler.HandlerFunc[handler.Context, greetRequest] {
				return func(ctx handler.Context, req greetRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(greet, handler.WithDecorators(mark("outer"), mark("inner")))
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, []string{"outer", "inner"}, order)
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), key{}, "v"))
	rec := httptest.NewRecorder()

	ctx := handler.NewContext(rec, req)
	assert.Same(t, req, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.Equal(t, i18n.DefaultLanguage, ctx.Lang())
	assert.NoError(t, ctx.Err())
}

func TestErrorToDetail(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{
		{Field: "Name", Kind: validator.Required, Message: "Name is required"},
	}

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", verrs, http.StatusUnprocessableEntity, "validation_error"},
		{"wrapped validation", errors.Join(errors.New("ctx"), verrs), http.StatusUnprocessableEntity, "validation_error"},
		{"media type", binder.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"missing content type", binder.ErrMissingContentType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"bad json", binder.ErrFailedToParseJSON, http.StatusBadRequest, "bad_request"},
		{"http error", handler.NewHTTPError(http.StatusNotFound, "section_not_found"), http.StatusNotFound, "section_not_found"},
		{"unknown", errors.New("db password leaked"), http.StatusInternalServerError, "internal_server_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, detail := handler.ErrorToDetail(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, detail.Code)
			assert.NotContains(t, detail.Message, "leaked")
		})
	}

	_, detail := handler.ErrorToDetail(verrs)
	assert.Equal(t, map[string][]string{"Name": {"Name is required"}}, detail.Details)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data with meta and status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		resp := handler.JSON([]string{"en"}, handler.WithJSONStatus(http.StatusCreated), handler.WithJSONMeta(map[string]any{"count": 1}))
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, []any{"en"}, body.Data)
		assert.Equal(t, float64(1), body.Meta["count"])
		assert.Nil(t, body.Error)
	})

	t.Run("error value", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		resp := handler.JSON(handler.ErrNotFound, handler.WithJSONMessage("Nothing here"))
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "not_found", body.Error.Code)
		assert.Equal(t, "Nothing here", body.Error.Message)
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: i18n.Resources{
		"ru": {handler.ErrorsSection: {"not_found": "Не найдено"}},
		"en": {handler.ErrorsSection: {"not_found": "Not found here"}},
	}})
	require.NoError(t, err)

	var logs bytes.Buffer
	log := logger.New(logger.WithOutput(&logs), logger.WithJSONFormatter())
	eh := handler.NewErrorHandler(log, handler.WithTranslator(tr))

	t.Run("translated client error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/locale/rules/x/y", nil)
		req = req.WithContext(i18n.SetLocale(req.Context(), "ru"))
		rec := httptest.NewRecorder()
		eh(handler.NewContext(rec, req), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Не найдено", decode(t, rec).Error.Message)
		assert.Contains(t, logs.String(), `"level":"WARN"`)
	})

	t.Run("server error keeps default message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		eh(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), decode(t, rec).Error.Message)
		assert.Contains(t, logs.String(), `"level":"ERROR"`)
	})

	t.Run("nil logger", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.NewErrorHandler(nil)(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrBadRequest)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
