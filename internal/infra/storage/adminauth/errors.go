package adminauth

import "errors"

var (
	ErrCredentialsNotFound = errors.New("adminauth.repository: admin credentials record not found")
	ErrCorruptRecord       = errors.New("adminauth.repository: corrupt admin credentials record")
	ErrBuildQuery          = errors.New("adminauth.repository: failed to build query")
	ErrExecQuery           = errors.New("adminauth.repository: failed to execute query")
	ErrEncodeRecord        = errors.New("adminauth.repository: failed to encode record")
)
