package service

import "errors"

var (
	ErrSubmitInProgress = errors.New("submit already in progress")
)
