package user

import "errors"

var (
	ErrProfileNotFound = errors.New("user.repository: user profile record not found")
	ErrCorruptRecord   = errors.New("user.repository: corrupt user profile record")
	ErrBuildQuery      = errors.New("user.repository: failed to build query")
	ErrExecQuery       = errors.New("user.repository: failed to execute query")
	ErrEncodeRecord    = errors.New("user.repository: failed to encode record")
)
