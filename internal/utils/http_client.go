package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and stamps
// every outgoing request with a trace id.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().SetContext(ctx).Post("/api/updateConfig")
type HTTPClient struct {
	*resty.Client

	traceIDs *UUIDGenerator
}

// NewHTTPClient creates a client rooted at baseURL. A non-positive timeout
// leaves resty's default (no timeout) in place.
//
// The X-Trace-ID header is taken from the request context when the caller
// set one with WithTraceID, otherwise a fresh id is generated.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := &HTTPClient{
		Client:   resty.New().SetBaseURL(baseURL),
		traceIDs: NewUUIDGenerator(),
	}
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	c.OnBeforeRequest(c.stampTraceID)

	return c
}

func (c *HTTPClient) stampTraceID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(TraceIDHeader) != "" {
		return nil
	}

	traceID, ok := GetTraceIDFromContext(req.Context())
	if !ok {
		traceID = c.traceIDs.Generate()
	}
	req.SetHeader(TraceIDHeader, traceID)

	return nil
}
