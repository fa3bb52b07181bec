package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/MKhiriev/dingus-admin/models"
)

// WriterNotifier prints one line per outcome, prefixed with its kind:
//
//	[success] Device assignments updated successfully.
//	[validation_failure] Please assign a training label to all devices.
type WriterNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterNotifier returns a notifier writing to out, or to os.Stderr if out
// is nil.
func NewWriterNotifier(out io.Writer) *WriterNotifier {
	if out == nil {
		out = os.Stderr
	}
	return &WriterNotifier{out: out}
}

// Notify never fails. Write errors are dropped because there is nowhere left
// to report them.
func (n *WriterNotifier) Notify(_ context.Context, outcome models.Outcome) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, _ = fmt.Fprintf(n.out, "[%s] %s\n", outcome.Kind, outcome.Message)
	return nil
}
