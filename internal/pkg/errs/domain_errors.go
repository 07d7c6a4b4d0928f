package errs

import "errors"

// Cross-layer categories. Usecases mark concrete errors with one of these so the
// handler layer can classify failures without importing every domain package.
var (
	ErrDomainValidation        = errors.New("domain validation error")
	ErrNotFound                = errors.New("not found")
	ErrConflict                = errors.New("conflict")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
