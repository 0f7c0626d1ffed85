package service

import "errors"

var (
	ErrEmailAlreadyRegistered = errors.New("email has been registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrWrongPassword          = errors.New("wrong password")
	ErrTodoNotFound           = errors.New("todo not found")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrTokenCodecMisconfigured means tokens cannot be checked at all, for
	// example because no sign key is configured. It is a server fault.
	ErrTokenCodecMisconfigured = errors.New("token codec is misconfigured")
)
