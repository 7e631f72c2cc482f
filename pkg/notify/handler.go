package notify

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oafilali/buy01/pkg/logger"
	"github.com/oafilali/buy01/pkg/message"
	"github.com/oafilali/buy01/pkg/validator"
)

// ErrorHandler is the last stop for errors nobody else handled. It logs the
// raw error and shows the user a resolved message instead.
type ErrorHandler struct {
	notifier Notifier
	resolver *message.Resolver
	log      *slog.Logger
}

// HandlerOption configures an ErrorHandler.
type HandlerOption func(*ErrorHandler)

// WithResolver sets the resolver used for user-facing text. Defaults to
// built-in English.
func WithResolver(r *message.Resolver) HandlerOption {
	return func(h *ErrorHandler) {
		if r != nil {
			h.resolver = r
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) HandlerOption {
	return func(h *ErrorHandler) {
		if log != nil {
			h.log = log
		}
	}
}

// NewErrorHandler creates an ErrorHandler delivering through nt.
func NewErrorHandler(nt Notifier, opts ...HandlerOption) *ErrorHandler {
	h := &ErrorHandler{
		notifier: nt,
		resolver: message.NewResolver(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle logs err and notifies the user with its resolved message. Nil
// errors are ignored. The returned error comes from the notifier.
func (h *ErrorHandler) Handle(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	attrs := []slog.Attr{logger.Error(err)}
	level := slog.LevelError

	var f *message.Failure
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &f):
		attrs = append(attrs, logger.Status(f.Status), logger.Kind(string(message.Classify(*f))))
		level = logLevel(f.Status)
	case errors.As(err, &ve):
		attrs = append(attrs, logger.Kind("validation"))
		level = slog.LevelWarn
	default:
		attrs = append(attrs, logger.Kind(string(message.KindClientRuntimeError)))
	}

	h.log.LogAttrs(ctx, level, "unhandled error", attrs...)

	if h.notifier == nil {
		return ErrNilNotifier
	}
	return h.notifier.Notify(ctx, New(KindError, h.resolver.Error(err)))
}

// logLevel reports 4xx statuses at warn and everything else, including
// network failures, at error.
func logLevel(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}
