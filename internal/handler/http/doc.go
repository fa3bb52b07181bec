// Package http implements the development receiver for the admin client.
//
// It accepts the device assignment and configuration submissions in memory,
// re-running the client validators, and answers with the {success, message}
// body the client interprets. Request tracing and access logging are handled
// by middleware before requests reach the service layer.
package http
