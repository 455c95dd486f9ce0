// Package redis connects to Redis and serves validation resources from it.
//
// Resources are stored as one hash per language and section:
//
//	HSET resx:en:account NameRequired "" NameRequiredMessage "{0} is required"
//
// Adapter implements i18n.TranslationAdapter over that layout and can also
// Store a resource set, which is how resources are seeded from files.
// Watch subscribes to a channel and reloads a translator on every message;
// Notify publishes such a message after resources change, so every replica
// picks up new rules without a restart.
//
// # Usage
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	tr, err := i18n.NewTranslator(ctx, redis.NewAdapter(client, cfg))
//	if err != nil {
//		return err
//	}
//	go redis.Watch(ctx, client, cfg.Channel, tr.Reload, log)
//
// Healthcheck returns a probe suitable for the readiness endpoint.
//
// Sentinel errors wrap the underlying go-redis errors with errors.Join.
package redis
