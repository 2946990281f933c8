// Package logger builds *slog.Logger values for the record packages and
// their hosts, and provides attribute helpers with consistent keys.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(logger.Component("binder")),
//	)
//	log.Warn("invalid validation rule", logger.Field("email"), logger.Rule("required|emial"))
//
// Attributes stored with WithContextAttrs, and those produced by extractors
// registered with WithContextExtractors, are added whenever a *Context
// logging method is used:
//
//	ctx := logger.WithContextAttrs(r.Context(), slog.String("request_id", id))
//	u, err := users.Bind(r.WithContext(ctx)) // binder debug logs carry request_id
//
// Config maps LOG_LEVEL and LOG_FORMAT to options:
//
//	var cfg logger.Config
//	_ = config.Load(&cfg)
//	log := logger.New(logger.FromConfig(cfg)...)
//
// Libraries in this module default to Nop and take a logger through an
// option, so nothing is written unless the host asks for it.
package logger
