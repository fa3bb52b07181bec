package client

import "errors"

// ErrBatchRejected is returned by a batch run whose submission did not
// succeed. The outcome has already been written to stderr.
var ErrBatchRejected = errors.New("batch submission rejected")
