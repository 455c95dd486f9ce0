package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReloadFunc is invoked for every change notification.
type ReloadFunc func(ctx context.Context) error

// Listen holds one pooled connection subscribed to channel and calls reload
// whenever the resources trigger fires. It blocks until ctx is done.
// Reload errors are logged and listening continues.
func Listen(ctx context.Context, pool *pgxpool.Pool, channel string, reload ReloadFunc, log logger) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return errors.Join(ErrFailedToListen, err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return errors.Join(ErrFailedToListen, err)
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Join(ErrFailedToListen, err)
		}
		if err := reload(ctx); err != nil {
			log.ErrorContext(ctx, "Failed to reload resources", "channel", n.Channel, "error", err)
		}
	}
}
