package blood

import "errors"

var (
	ErrNotFound         = errors.New("blood request not found")
	ErrInvalidBloodType = errors.New("invalid blood type")
	ErrRequestClosed    = errors.New("blood request is no longer open")
	ErrNotRequester     = errors.New("only the requester may modify this request")
)
