package server

import "context"

// Server defines the lifecycle contract of the receiver.
type Server interface {
	// RunServer serves requests until ctx is canceled or a termination
	// signal arrives, then shuts down gracefully. It returns nil after a
	// clean shutdown.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
