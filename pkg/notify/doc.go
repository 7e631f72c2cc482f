// Package notify shows short messages to the user and routes unhandled
// errors to them.
//
// A Notifier delivers Notifications. MemoryNotifier records them, which suits
// tests and UIs that poll. LogNotifier writes them to slog; Multi combines
// several notifiers.
//
// ErrorHandler replaces ad hoc error toasts:
//
//	h := notify.NewErrorHandler(toasts,
//	    notify.WithResolver(resolver),
//	    notify.WithLogger(log),
//	)
//	if err := api.CreateProduct(ctx, p); err != nil {
//	    _ = h.Handle(ctx, err)
//	}
//
// Errors wrapping a *message.Failure are resolved as HTTP failures and
// logged at warn for 4xx, error otherwise. Validation errors are logged at
// warn. Anything else is a client error logged at error. The user always
// gets the resolved message, never the raw error text.
package notify
