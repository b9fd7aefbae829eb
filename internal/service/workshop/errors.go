package workshop

import "errors"

var (
	ErrNotFound        = errors.New("workshop not found")
	ErrNotOpen         = errors.New("workshop is not open for enrollment")
	ErrFull            = errors.New("workshop is at capacity")
	ErrAlreadyEnrolled = errors.New("already enrolled in this workshop")
	ErrNotEnrolled     = errors.New("not enrolled in this workshop")
)
