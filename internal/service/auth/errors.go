package auth

import "errors"

var (
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPhoneAlreadyExists = errors.New("phone number already registered")
	ErrOTPExpired         = errors.New("otp expired or never requested")
	ErrOTPInvalid         = errors.New("otp code is incorrect")
	ErrOTPMaxAttempts     = errors.New("too many otp attempts")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrPhoneNotVerified   = errors.New("phone number not verified")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionNotFound    = errors.New("session not found or expired")
)
