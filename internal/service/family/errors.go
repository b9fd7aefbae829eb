package family

import "errors"

var (
	ErrNotFound         = errors.New("family member not found")
	ErrSelfImmutable    = errors.New("self member cannot be removed")
	ErrInvalidBloodType = errors.New("invalid blood type")
)
