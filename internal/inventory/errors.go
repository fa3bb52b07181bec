package inventory

import "errors"

var (
	ErrReadInventory     = errors.New("cannot read inventory file")
	ErrInvalidInventory  = errors.New("invalid inventory file")
	ErrInvalidIPAddress  = errors.New("invalid device ip address")
	ErrInvalidMACAddress = errors.New("invalid device mac address")
	ErrDuplicateDevice   = errors.New("device listed more than once")
)
