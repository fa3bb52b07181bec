// Package server runs the development receiver's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown once the context is canceled or SIGINT, SIGTERM or SIGQUIT
// arrives.
package server
