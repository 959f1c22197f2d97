package catalog

import "errors"

var (
	ErrCatalogNotFound = errors.New("catalog.repository: service catalog record not found")
	ErrCorruptRecord   = errors.New("catalog.repository: corrupt service catalog record")
	ErrBuildQuery      = errors.New("catalog.repository: failed to build query")
	ErrExecQuery       = errors.New("catalog.repository: failed to execute query")
	ErrEncodeRecord    = errors.New("catalog.repository: failed to encode record")
)
