package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidID     = errors.New("invalid id")
	ErrDuplicateNIC  = errors.New("nic already exists")
	ErrMissingFields = errors.New("missing mandatory fields")
	ErrEmptyFile     = errors.New("file has no data rows")
)

// RowError rejects a single import row during the validation gate that
// runs before any write. It aborts the whole file, unlike store-level
// per-row failures inside a submitted batch, which only affect their row.
type RowError struct {
	Line   int
	Row    string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Line, e.Reason, e.Row)
}
