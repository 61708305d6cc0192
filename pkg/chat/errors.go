package chat

import "errors"

// Validation failures are reported before anything is written. Storage
// failures are returned as-is from gorm.
var (
	ErrMissingSession = errors.New("session id is required")
	ErrEmptyMessage   = errors.New("message is required")
	ErrMessageTooLong = errors.New("message exceeds 2000 characters")
)

// IsValidationError reports whether err belongs to the validation
// taxonomy rather than storage.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingSession) ||
		errors.Is(err, ErrEmptyMessage) ||
		errors.Is(err, ErrMessageTooLong)
}
