package console

import (
	"context"

	"github.com/casadopescador/console/internal/shared"
)

// AlertKind classifies a transient operator notification.
type AlertKind string

const (
	AlertSuccess AlertKind = shared.FlashSuccess
	AlertError   AlertKind = shared.FlashError
	AlertWarning AlertKind = shared.FlashWarning
)

// Notifier delivers alerts to the operator.
type Notifier interface {
	Notify(ctx context.Context, kind AlertKind, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, kind AlertKind, message string)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, kind AlertKind, message string) {
	f(ctx, kind, message)
}

// SessionNotifier queues alerts as flash messages on the request session.
type SessionNotifier struct{}

// Notify implements Notifier. Alerts raised outside a request are dropped.
func (SessionNotifier) Notify(ctx context.Context, kind AlertKind, message string) {
	shared.AddFlash(ctx, string(kind), message)
}
