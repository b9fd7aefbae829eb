package doctor

import "errors"

var (
	ErrNotFound        = errors.New("doctor not found")
	ErrMemberNotFound  = errors.New("family member not found")
	ErrInvalidInterval = errors.New("invalid availability interval")
	ErrNoFee           = errors.New("doctor has no consultation fee configured")
)
