// Package httpserver runs an http.Handler with timeouts, structured
// lifecycle logging and graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithOnShutdown(func() { rdb.Close() }),
//	)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Liveness and Readiness provide the /healthz and /readyz probes; Readiness
// takes named CheckFunc values such as redis.Healthcheck or pg.Healthcheck.
package httpserver
