package pharmacy

import "errors"

var (
	ErrUnknownMedicine = errors.New("medicine not in catalog")
	ErrInvalidSort     = errors.New("unknown sort mode")
	ErrMemberNotFound  = errors.New("family member not found")
)
