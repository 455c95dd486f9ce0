// Package pg stores localized resources in PostgreSQL using pgx/v5.
//
// Migrate applies the embedded goose migrations that create the resources
// table, keyed by (lang, section, key), and a statement trigger that raises
// a NOTIFY on every change. Adapter implements i18n.TranslationAdapter over
// that table, Store seeds it, and Listen turns notifications into reloads.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	tr, err := i18n.NewTranslator(ctx, pg.NewAdapter(pool))
//	go pg.Listen(ctx, pool, cfg.NotifyChannel, tr.Reload, log)
//
// Healthcheck returns a func(context.Context) error suitable for readiness probes.
package pg
