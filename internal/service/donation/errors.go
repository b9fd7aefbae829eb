package donation

import "errors"

var (
	ErrInitiativeNotFound = errors.New("donation initiative not found")
	ErrInitiativeClosed   = errors.New("donation initiative is not active")
	ErrInvalidAmount      = errors.New("donation amount must be positive")
)
