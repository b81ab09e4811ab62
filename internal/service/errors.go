package service

import "errors"

var (
	ErrPermissionDenied = errors.New("write permission denied")
	ErrItemNotFound     = errors.New("item not found")

	// Storage sentinels. Adapters wrap their driver errors with one of
	// these so the service and transport can classify failures without
	// knowing the backend.
	ErrStorageConflict    = errors.New("sku conflicts with an existing item")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports a caller-correctable problem with a draft.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a draft validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
