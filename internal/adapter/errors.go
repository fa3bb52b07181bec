package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrRequestRejected = errors.New("request rejected by server")
	ErrTransport       = errors.New("request could not be completed")
	ErrInvalidEncoding = errors.New("unsupported payload encoding")
)

// ResponseError is returned when the server answered with a non-2xx status
// or with an explicit "success": false. Message is the optional text from the
// response body and is empty when the server sent none.
type ResponseError struct {
	Status  int
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: http %d", ErrRequestRejected, e.Status)
	}
	return fmt.Sprintf("%s: http %d: %s", ErrRequestRejected, e.Status, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return ErrRequestRejected
}
