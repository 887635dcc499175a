package openaddr

import "github.com/pkg/errors"

var (
	ErrKeyNotFound  = errors.New("openaddr: key not found")
	ErrTableFull    = errors.New("openaddr: table is full")
	ErrNotResizable = errors.New("openaddr: no larger table size available")

	ErrBadSizes   = errors.New("openaddr: table sizes must be ascending and at least 2")
	ErrBadDateKey = errors.New("openaddr: bad date key")
)
