// Command resxd serves resource-driven validation: registration requests are
// checked against rules kept in a resource store, and the same resources are
// published to client runtimes.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/resxkit/handler"
	"github.com/dmitrymomot/resxkit/modules/account"
	"github.com/dmitrymomot/resxkit/modules/locale"
	"github.com/dmitrymomot/resxkit/pkg/config"
	"github.com/dmitrymomot/resxkit/pkg/httpserver"
	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/requestid"
)

type appConfig struct {
	// Source selects the resource backend: fs, file, embedded, redis, postgres, mongo or s3.
	Source string `env:"RESX_SOURCE" envDefault:"fs"`
	// SeedDir is copied into redis, postgres, mongo or s3 before the first load.
	SeedDir      string `env:"RESX_SEED_DIR"`
	SeedEmbedded bool   `env:"RESX_SEED_EMBEDDED" envDefault:"false"`
	// ReloadInterval is the minimum time between two reloads triggered by change notifications.
	ReloadInterval time.Duration `env:"RESX_RELOAD_INTERVAL" envDefault:"1s"`
}

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)

	log := logger.New(append(logCfg.Options(),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)...)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error("resxd stopped", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		cfg     appConfig
		i18nCfg i18n.Config
		httpCfg httpserver.Config
	)
	if err := errors.Join(config.Load(&cfg), config.Load(&i18nCfg), config.Load(&httpCfg)); err != nil {
		return err
	}

	src, err := openSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	if src.close != nil {
		defer src.close()
	}

	tr, err := i18n.NewTranslator(ctx, src.adapter, append(i18nCfg.Options(), i18n.WithLogger(log))...)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "Resource store ready",
		logger.Source(cfg.Source),
		slog.Any("languages", tr.SupportedLanguages()),
	)

	if src.watch != nil {
		go func() {
			if err := src.watch(ctx, throttle(tr.Reload, cfg.ReloadInterval)); err != nil {
				log.ErrorContext(ctx, "Resource watcher stopped", logger.Source(cfg.Source), logger.Error(err))
			}
		}()
	}

	server := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return server.Run(ctx, newRouter(tr, src.checks, log))
}

func newRouter(tr *i18n.Translator, checks map[string]httpserver.CheckFunc, log *slog.Logger) http.Handler {
	errorHandler := handler.NewErrorHandler(log, handler.WithTranslator(tr))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(i18n.Middleware(i18n.TranslatorLangExtractor(tr)))

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(log, checks))

	r.Mount("/account", account.Router(account.RouterOptions{
		Registration: account.NewRegistrationService(tr, log),
	}))
	r.Mount("/locale", locale.Router(locale.NewService(tr, errorHandler)))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})

	return r
}
