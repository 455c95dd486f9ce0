package locale

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/resxkit/handler"
	"github.com/dmitrymomot/resxkit/pkg/binder"
	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/validator"
)

// ConfigRequest selects the language of a resource dump.
type ConfigRequest struct {
	Culture string `query:"culture"`
}

// RulesRequest selects the rules of one field.
type RulesRequest struct {
	Section string `path:"section"`
	Field   string `path:"field"`
	Culture string `query:"culture"`
}

// Rule is a resolved rule with its message already formatted.
type Rule struct {
	Kind       validator.Kind `json:"kind"`
	Argument   string         `json:"argument"`
	Message    string         `json:"message"`
	MessageKey string         `json:"messageKey"`
}

// FieldRules is everything a client needs to validate a field locally.
type FieldRules struct {
	Section     string `json:"section"`
	Field       string `json:"field"`
	DisplayName string `json:"displayName"`
	Rules       []Rule `json:"rules"`
}

// Service exposes the loaded resources to client runtimes.
type Service struct {
	tr           *i18n.Translator
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService creates the service. errorHandler may be nil.
func NewService(tr *i18n.Translator, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	return &Service{tr: tr, errorHandler: errorHandler}
}

// Handle serves GET /config and GET /rules/{section}/{field}.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/config", handler.Wrap(s.config,
		handler.WithBinders[handler.Context, ConfigRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, ConfigRequest](s.errorHandler),
	))
	r.Get("/rules/{section}/{field}", handler.Wrap(s.rules,
		handler.WithBinders[handler.Context, RulesRequest](binder.Path(chi.URLParam), binder.Query()),
		handler.WithErrorHandler[handler.Context, RulesRequest](s.errorHandler),
	))

	return r
}

// language prefers an explicit culture over the request language.
func (s *Service) language(ctx handler.Context, culture string) string {
	if culture == "" {
		return s.tr.ResolveLanguage(ctx.Lang())
	}
	return s.tr.MatchLanguage(culture)
}

// config dumps every section visible to the language as
// {section: {key: value}}. encoding/json writes map keys sorted.
func (s *Service) config(ctx handler.Context, req ConfigRequest) handler.Response {
	lang := s.language(ctx, req.Culture)
	return handler.JSON(s.tr.Sections(lang), handler.WithJSONMeta(map[string]any{
		"language": lang,
	}))
}

func (s *Service) rules(ctx handler.Context, req RulesRequest) handler.Response {
	if req.Section == "" || req.Field == "" {
		return handler.JSONError(handler.ErrBadRequest)
	}

	lang := s.language(ctx, req.Culture)
	return handler.JSON(Describe(s.tr.Section(lang, req.Section), req.Section, req.Field),
		handler.WithJSONMeta(map[string]any{"language": lang}),
	)
}

// Describe resolves the active rules of field. A field without rules yields
// an empty, non-nil Rules slice.
func Describe(lookup validator.Lookup, section, field string) FieldRules {
	displayName := validator.DisplayName(lookup, field)
	defs := validator.Resolve(lookup, field)

	out := FieldRules{
		Section:     section,
		Field:       field,
		DisplayName: displayName,
		Rules:       make([]Rule, 0, len(defs)),
	}
	for _, def := range defs {
		message := def.MessageKey
		if def.HasTemplate {
			message = validator.FormatMessage(def.Message, displayName, def.Argument)
		}
		out.Rules = append(out.Rules, Rule{
			Kind:       def.Kind,
			Argument:   def.Argument,
			Message:    message,
			MessageKey: def.MessageKey,
		})
	}
	return out
}
