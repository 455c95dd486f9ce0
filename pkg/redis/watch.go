package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/resxkit/pkg/logger"
)

// ReloadFunc refreshes resources, typically i18n.Translator.Reload.
type ReloadFunc func(ctx context.Context) error

// Watch subscribes to channel and calls reload for every message until ctx is
// done. Reload errors are logged and do not stop the watcher; the previous
// resources stay in effect.
func Watch(ctx context.Context, client redis.UniversalClient, channel string, reload ReloadFunc, log *slog.Logger) error {
	if log == nil {
		log = logger.Discard()
	}

	sub := client.Subscribe(ctx, channel)
	defer func() { _ = sub.Close() }()

	// Wait for the subscription confirmation so notifications sent right after
	// Watch starts are not lost.
	if _, err := sub.Receive(ctx); err != nil {
		return errors.Join(ErrFailedToSubscribe, err)
	}

	log.InfoContext(ctx, "Watching for resource reloads", slog.String("channel", channel))

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if err := reload(ctx); err != nil {
				log.ErrorContext(ctx, "Resource reload failed",
					slog.String("channel", msg.Channel),
					logger.Error(err),
				)
				continue
			}
			log.InfoContext(ctx, "Resources reloaded", slog.String("channel", msg.Channel))
		}
	}
}

// Notify asks every watcher on channel to reload.
func Notify(ctx context.Context, client redis.UniversalClient, channel string) error {
	return client.Publish(ctx, channel, "reload").Err()
}
