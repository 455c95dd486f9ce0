package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/resxkit/pkg/config"
	"github.com/dmitrymomot/resxkit/pkg/httpserver"
	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/mongo"
	"github.com/dmitrymomot/resxkit/pkg/pg"
	"github.com/dmitrymomot/resxkit/pkg/redis"
	"github.com/dmitrymomot/resxkit/pkg/s3store"
	"github.com/dmitrymomot/resxkit/resources"
)

const (
	sourceFS       = "fs"
	sourceFile     = "file"
	sourceEmbedded = "embedded"
	sourceRedis    = "redis"
	sourcePostgres = "postgres"
	sourceMongo    = "mongo"
	sourceS3       = "s3"
)

var (
	ErrUnknownSource  = errors.New("unknown resource source")
	ErrNoResourceFile = errors.New("RESX_FILE must name a .json or .yaml file")
	ErrSeedFailed     = errors.New("failed to seed resources")
)

// source is a resource backend opened for the lifetime of the process.
type source struct {
	adapter i18n.TranslationAdapter
	checks  map[string]httpserver.CheckFunc
	// watch blocks until ctx is done, calling reload on every change notification.
	watch func(ctx context.Context, reload func(context.Context) error) error
	close func()
}

// seeder writes section files into a remote store.
type seeder interface {
	Store(ctx context.Context, res i18n.Resources) error
}

func openSource(ctx context.Context, cfg appConfig, log *slog.Logger) (*source, error) {
	var i18nCfg i18n.Config
	if err := config.Load(&i18nCfg); err != nil {
		return nil, err
	}

	switch cfg.Source {
	case sourceFS:
		return &source{adapter: i18n.NewFSAdapter(os.DirFS(i18nCfg.Dir), ".")}, nil
	case sourceFile:
		adapter := i18n.NewFileAdapter(nil, i18nCfg.File)
		if adapter == nil {
			return nil, ErrNoResourceFile
		}
		return &source{adapter: adapter}, nil
	case sourceEmbedded:
		return &source{adapter: i18n.NewFSAdapter(resources.FS, ".")}, nil
	case sourceRedis:
		return openRedis(ctx, cfg, log)
	case sourcePostgres:
		return openPostgres(ctx, cfg, log)
	case sourceMongo:
		return openMongo(ctx, cfg, log)
	case sourceS3:
		return openS3(ctx, cfg, log)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
}

func openRedis(ctx context.Context, cfg appConfig, log *slog.Logger) (*source, error) {
	var redisCfg redis.Config
	if err := config.Load(&redisCfg); err != nil {
		return nil, err
	}
	client, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return nil, err
	}

	adapter := redis.NewAdapter(client, redisCfg)
	if err := seed(ctx, cfg, adapter, log); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &source{
		adapter: adapter,
		checks:  map[string]httpserver.CheckFunc{"redis": redis.Healthcheck(client)},
		watch: func(ctx context.Context, reload func(context.Context) error) error {
			return redis.Watch(ctx, client, redisCfg.Channel, reload, log)
		},
		close: func() { _ = client.Close() },
	}, nil
}

func openPostgres(ctx context.Context, cfg appConfig, log *slog.Logger) (*source, error) {
	var pgCfg pg.Config
	if err := config.Load(&pgCfg); err != nil {
		return nil, err
	}
	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		pool.Close()
		return nil, err
	}

	store := storeFunc(func(ctx context.Context, res i18n.Resources) error {
		return pg.Store(ctx, pool, res)
	})
	if err := seed(ctx, cfg, store, log); err != nil {
		pool.Close()
		return nil, err
	}

	return &source{
		adapter: pg.NewAdapter(pool),
		checks:  map[string]httpserver.CheckFunc{"postgres": pg.Healthcheck(pool)},
		watch: func(ctx context.Context, reload func(context.Context) error) error {
			return pg.Listen(ctx, pool, pgCfg.NotifyChannel, reload, log)
		},
		close: pool.Close,
	}, nil
}

func openMongo(ctx context.Context, cfg appConfig, log *slog.Logger) (*source, error) {
	var mongoCfg mongo.Config
	if err := config.Load(&mongoCfg); err != nil {
		return nil, err
	}
	client, err := mongo.New(ctx, mongoCfg)
	if err != nil {
		return nil, err
	}

	coll := mongo.Collection(client, mongoCfg)
	store := storeFunc(func(ctx context.Context, res i18n.Resources) error {
		return mongo.Store(ctx, coll, res)
	})
	if err := seed(ctx, cfg, store, log); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.InfoContext(ctx, "Using MongoDB resources",
		slog.String("database", mongoCfg.Database),
		slog.String("collection", mongoCfg.Collection),
	)

	return &source{
		adapter: mongo.NewAdapter(coll),
		checks:  map[string]httpserver.CheckFunc{"mongo": mongo.Healthcheck(client)},
		close:   func() { _ = client.Disconnect(context.Background()) },
	}, nil
}

func openS3(ctx context.Context, cfg appConfig, log *slog.Logger) (*source, error) {
	var s3Cfg s3store.Config
	if err := config.Load(&s3Cfg); err != nil {
		return nil, err
	}
	client, err := s3store.NewClient(ctx, s3Cfg)
	if err != nil {
		return nil, err
	}

	adapter := s3store.NewAdapter(client, s3Cfg)
	if err := seed(ctx, cfg, adapter, log); err != nil {
		return nil, err
	}

	return &source{
		adapter: adapter,
		checks:  map[string]httpserver.CheckFunc{"s3": s3store.Healthcheck(client, s3Cfg.Bucket)},
	}, nil
}

type storeFunc func(ctx context.Context, res i18n.Resources) error

func (f storeFunc) Store(ctx context.Context, res i18n.Resources) error { return f(ctx, res) }

// seed copies section files from RESX_SEED_DIR, or the embedded defaults when
// RESX_SEED_EMBEDDED is set, into a remote store.
func seed(ctx context.Context, cfg appConfig, dst seeder, log *slog.Logger) error {
	var src i18n.TranslationAdapter
	switch {
	case cfg.SeedDir != "":
		src = i18n.NewDirectoryAdapter(cfg.SeedDir)
	case cfg.SeedEmbedded:
		src = i18n.NewFSAdapter(resources.FS, ".")
	default:
		return nil
	}

	res, err := src.Load(ctx)
	if err != nil {
		return errors.Join(ErrSeedFailed, err)
	}
	if err := dst.Store(ctx, res); err != nil {
		return errors.Join(ErrSeedFailed, err)
	}
	log.InfoContext(ctx, "Resources seeded", slog.Int("entries", res.Len()))
	return nil
}
