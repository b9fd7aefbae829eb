package profile

import "errors"

var (
	ErrNotFound         = errors.New("profile not found")
	ErrInvalidBloodType = errors.New("invalid blood type")
)
