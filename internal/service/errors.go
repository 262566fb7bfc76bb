package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrResetTokenInvalidOrExpired = errors.New("reset token is invalid or expired")

	ErrNotPostOwner = errors.New("post belongs to another user")
)
