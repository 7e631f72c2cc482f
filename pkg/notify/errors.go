package notify

import "errors"

var (
	// ErrNilNotifier is returned by helpers called without a notifier.
	ErrNilNotifier = errors.New("notifier is nil")

	// ErrEmptyMessage is returned when a notification has no text to show.
	ErrEmptyMessage = errors.New("notification message is empty")
)
