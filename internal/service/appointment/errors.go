package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrMemberNotFound    = errors.New("family member not found")
	ErrSlotNotFound      = errors.New("time slot not found")
	ErrSlotNotAvailable  = errors.New("time slot is not available for booking")
	ErrInvalidDate       = errors.New("invalid appointment date")
	ErrInvalidTransition = errors.New("invalid appointment status transition")
)
