// Package httpserver runs the service's HTTP listener with graceful
// shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled, when the process receives SIGINT or
// SIGTERM, or when Shutdown is called. Bind and serve failures wrap ErrStart;
// drain failures wrap ErrShutdown.
package httpserver
