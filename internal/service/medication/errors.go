package medication

import "errors"

var (
	ErrNotFound        = errors.New("medication not found")
	ErrMemberNotFound  = errors.New("family member not found")
	ErrInvalidSchedule = errors.New("invalid reminder schedule")
	ErrInvalidDates    = errors.New("end date precedes start date")
)
