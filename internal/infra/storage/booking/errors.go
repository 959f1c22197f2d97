package booking

import "errors"

var (
	ErrLedgerNotFound = errors.New("booking.repository: booking ledger record not found")
	ErrCorruptRecord  = errors.New("booking.repository: corrupt booking ledger record")
	ErrBuildQuery     = errors.New("booking.repository: failed to build query")
	ErrExecQuery      = errors.New("booking.repository: failed to execute query")
	ErrEncodeRecord   = errors.New("booking.repository: failed to encode record")
)
