package redis_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/redis"
)

func TestWatch(t *testing.T) {
	t.Parallel()
	mr, client := setup(t)
	mr.HSet("resx:en:account", "NameDisplayName", "Name")

	cfg := redis.Config{KeyPrefix: "resx", Channel: "resx:reload"}
	adapter := redis.NewAdapter(client, cfg)
	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)

	var calls atomic.Int32
	reload := func(ctx context.Context) error {
		defer calls.Add(1)
		return tr.Reload(ctx)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- redis.Watch(ctx, client, cfg.Channel, reload, nil) }()

	require.Eventually(t, func() bool {
		return len(mr.PubSubChannels(cfg.Channel)) == 1
	}, time.Second, 10*time.Millisecond)

	mr.HSet("resx:en:account", "NameDisplayName", "User name")
	require.NoError(t, redis.Notify(context.Background(), client, cfg.Channel))

	require.Eventually(t, func() bool {
		got, _ := tr.Lookup("en", "account", "NameDisplayName")
		return got == "User name"
	}, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatch_ReloadErrorKeepsWatching(t *testing.T) {
	t.Parallel()
	mr, client := setup(t)

	var calls atomic.Int32
	reload := func(context.Context) error {
		calls.Add(1)
		return errors.New("source down")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = redis.Watch(ctx, client, "ch", reload, nil) }()

	require.Eventually(t, func() bool {
		return len(mr.PubSubChannels("ch")) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, redis.Notify(context.Background(), client, "ch"))
	require.NoError(t, redis.Notify(context.Background(), client, "ch"))

	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 10*time.Millisecond)
}

func TestWatch_SubscribeFailure(t *testing.T) {
	t.Parallel()
	mr, client := setup(t)
	mr.Close()

	err := redis.Watch(context.Background(), client, "ch", func(context.Context) error { return nil }, nil)
	assert.ErrorIs(t, err, redis.ErrFailedToSubscribe)
}
