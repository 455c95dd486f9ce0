package account

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/resxkit/handler"
	"github.com/dmitrymomot/resxkit/pkg/binder"
	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/validator"
)

// Section is the resource section holding registration rules and messages.
const Section = "account"

// RegisterRequest is the registration form. Values are validated exactly as
// submitted; nothing is trimmed.
type RegisterRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	Age             string `json:"age" form:"age"`
	Culture         string `json:"culture" form:"culture"`
}

// RegisterResponse is returned once every field passed validation.
type RegisterResponse struct {
	Message string `json:"message"`
}

// RegistrationService validates registration requests against the resources
// served by a Translator.
type RegistrationService struct {
	tr           *i18n.Translator
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewRegistrationService creates the service. A nil logger discards output.
func NewRegistrationService(tr *i18n.Translator, log *slog.Logger) *RegistrationService {
	if log == nil {
		log = logger.Discard()
	}
	return &RegistrationService{
		tr:           tr,
		log:          log,
		errorHandler: handler.NewErrorHandler(log, handler.WithTranslator(tr)),
	}
}

// Handle serves POST / with a JSON or form body.
func (s *RegistrationService) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/", handler.Wrap(s.register,
		handler.WithBinders[handler.Context, RegisterRequest](binder.Body()),
		handler.WithErrorHandler[handler.Context, RegisterRequest](s.errorHandler),
	))
	return r
}

// Validate checks every field of req for lang. It returns
// validator.ValidationErrors keyed by the JSON field names, or nil.
func (s *RegistrationService) Validate(ctx context.Context, lang string, req RegisterRequest) error {
	v := validator.New(s.tr.Section(lang, Section), validator.WithDiagnostics(func(d validator.Diagnostic) {
		s.log.WarnContext(ctx, "Malformed validation rule",
			logger.Lang(lang),
			logger.Section(Section),
			logger.Field(d.Field),
			logger.Rule(d.Kind),
			slog.String("argument", d.Argument),
			logger.Error(d.Err),
		)
	}))

	return v.ValidateFields(
		validator.Field{Name: "Name", Key: "name", Value: req.Name},
		validator.Field{Name: "Email", Key: "email", Value: req.Email},
		validator.Field{Name: "Password", Key: "password", Value: req.Password},
		validator.Field{
			Name:    "ConfirmPassword",
			Key:     "confirmPassword",
			Value:   req.ConfirmPassword,
			Options: []validator.ValueOption{validator.WithCompareTo(req.Password)},
		},
		validator.Field{Name: "Age", Key: "age", Value: req.Age},
		validator.Field{Name: "Culture", Key: "culture", Value: req.Culture},
	)
}

func (s *RegistrationService) register(ctx handler.Context, req RegisterRequest) handler.Response {
	lang := ctx.Lang()

	if err := s.Validate(ctx, lang, req); err != nil {
		var opts []handler.JSONOption
		if msg, ok := s.tr.Lookup(lang, handler.ErrorsSection, "validation_error"); ok {
			opts = append(opts, handler.WithJSONMessage(msg))
		}
		return handler.JSONError(err, opts...)
	}

	s.log.InfoContext(ctx, "Registration accepted", logger.Lang(lang), logger.Component("account"))

	return handler.JSON(RegisterResponse{
		Message: s.tr.T(lang, Section+".RegisteredMessage", "name", req.Name),
	})
}
