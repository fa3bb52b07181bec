package notify

import (
	"context"

	"github.com/MKhiriev/dingus-admin/models"
)

type fallbackNotifier struct {
	primary  Notifier
	fallback Notifier
}

// WithFallback returns a Notifier that tries primary first and hands the
// outcome to fallback when primary is nil or fails. A nil fallback becomes a
// WriterNotifier on stderr.
func WithFallback(primary, fallback Notifier) Notifier {
	if fallback == nil {
		fallback = NewWriterNotifier(nil)
	}
	return &fallbackNotifier{primary: primary, fallback: fallback}
}

func (n *fallbackNotifier) Notify(ctx context.Context, outcome models.Outcome) error {
	if n.primary != nil {
		if err := n.primary.Notify(ctx, outcome); err == nil {
			return nil
		}
	}

	return n.fallback.Notify(ctx, outcome)
}
