package notify

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/oafilali/buy01/pkg/logger"
)

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// MemoryNotifier records notifications in order. Safe for concurrent use.
type MemoryNotifier struct {
	mu    sync.RWMutex
	items []Notification
}

// NewMemoryNotifier creates an empty MemoryNotifier.
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

func (m *MemoryNotifier) Notify(_ context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, n)
	return nil
}

// All returns a copy of the recorded notifications, oldest first.
func (m *MemoryNotifier) All() []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.items)
}

// Last returns the most recent notification.
func (m *MemoryNotifier) Last() (Notification, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.items) == 0 {
		return Notification{}, false
	}
	return m.items[len(m.items)-1], true
}

// Reset drops every recorded notification.
func (m *MemoryNotifier) Reset() {
	m.mu.Lock()
	m.items = nil
	m.mu.Unlock()
}

// LogNotifier writes notifications to a logger, one record each.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier. A nil logger means slog.Default().
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(ctx context.Context, n Notification) error {
	level := slog.LevelInfo
	switch n.Kind {
	case KindWarning:
		level = slog.LevelWarn
	case KindError:
		level = slog.LevelError
	}
	l.log.LogAttrs(ctx, level, n.Message,
		logger.NotificationID(n.ID),
		logger.Kind(string(n.Kind)),
	)
	return nil
}

// Multi fans a notification out to every notifier. All notifiers are tried;
// their errors are joined.
func Multi(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(ctx context.Context, n Notification) error {
		var errs []error
		for _, nt := range notifiers {
			if nt == nil {
				continue
			}
			if err := nt.Notify(ctx, n); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

func send(ctx context.Context, nt Notifier, kind Kind, msg string) error {
	if nt == nil {
		return ErrNilNotifier
	}
	if msg == "" {
		return ErrEmptyMessage
	}
	return nt.Notify(ctx, New(kind, msg))
}

// Success shows a success notification.
func Success(ctx context.Context, nt Notifier, msg string) error {
	return send(ctx, nt, KindSuccess, msg)
}

// Info shows an informational notification.
func Info(ctx context.Context, nt Notifier, msg string) error {
	return send(ctx, nt, KindInfo, msg)
}

// Warning shows a warning notification.
func Warning(ctx context.Context, nt Notifier, msg string) error {
	return send(ctx, nt, KindWarning, msg)
}

// Error shows an error notification.
func Error(ctx context.Context, nt Notifier, msg string) error {
	return send(ctx, nt, KindError, msg)
}
