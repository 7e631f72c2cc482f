// Package logger builds *slog.Logger values with functional options.
//
// New picks a JSON or text handler, attaches static attributes and, when
// ContextExtractor callbacks are registered, wraps the handler so each record
// also carries values pulled from the context. Config plus FromConfig let
// the level and format come from the environment:
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	opts, err := logger.FromConfig(cfg)
//	if err != nil {
//	    return err
//	}
//	log := logger.New(append(opts, logger.WithOutput(os.Stderr))...)
//
// Attribute helpers (Error, Status, Kind, Field and friends) keep key names
// consistent across packages. Error and Errors return an empty Attr for nil
// input so callers can skip the nil check.
package logger
