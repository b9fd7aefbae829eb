package health

import "errors"

var (
	ErrMemberNotFound   = errors.New("family member not found")
	ErrInvalidMetric    = errors.New("invalid metric type")
	ErrInvalidValue     = errors.New("metric value out of range")
	ErrMissingSecondary = errors.New("blood pressure requires a diastolic value")
)
