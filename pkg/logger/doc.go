// Package logger builds *slog.Logger values for the service and provides the
// attribute helpers used across it, so that keys such as "request_id" and
// "status_code" are spelled the same everywhere.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.WarnContext(ctx, "request rejected",
//	    logger.StatusCode(400),
//	    logger.Field("pets[0].name"),
//	)
//
// Context extractors run on every *Context call and append request-scoped
// attributes to the record. Error and RequestID return an empty attribute for
// zero input, which slog omits.
package logger
