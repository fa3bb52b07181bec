package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrUnassignedLabel  = errors.New("device has no training label")
	ErrDuplicateLabel   = errors.New("training label assigned to more than one device")
	ErrInvalidAccountID = errors.New("invalid wild apricot account id")
)

// RowsError reports a rule violated by one or more rows of a device
// assignment set. Rows holds zero-based indices in display order.
type RowsError struct {
	Reason error
	Rows   []int
}

func (e *RowsError) Error() string {
	rows := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		rows[i] = fmt.Sprint(r)
	}
	return fmt.Sprintf("%s (rows %s)", e.Reason, strings.Join(rows, ", "))
}

func (e *RowsError) Unwrap() error {
	return e.Reason
}
