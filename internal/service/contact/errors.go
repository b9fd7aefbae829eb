package contact

import "errors"

var (
	ErrNotFound     = errors.New("emergency contact not found")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrTooMany      = errors.New("emergency contact limit reached")
)
