// Package notify delivers submission outcomes to the person running the
// admin client.
//
// A [Notifier] shows exactly one message per outcome. The terminal UI
// provides a toast implementation; [WriterNotifier] prints a plain line and
// is used in batch mode and as the fallback of [WithFallback].
package notify

import (
	"context"

	"github.com/MKhiriev/dingus-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier displays a single outcome message.
type Notifier interface {
	// Notify shows outcome. Implementations backed by a display that may be
	// gone return ErrDisplayUnavailable instead of panicking.
	Notify(ctx context.Context, outcome models.Outcome) error
}

// NotifierFunc adapts an ordinary function to the Notifier interface.
type NotifierFunc func(ctx context.Context, outcome models.Outcome) error

func (f NotifierFunc) Notify(ctx context.Context, outcome models.Outcome) error {
	return f(ctx, outcome)
}
