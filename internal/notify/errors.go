package notify

import "errors"

var ErrDisplayUnavailable = errors.New("notification display unavailable")
