package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNoImageProvided = errors.New("no image payload provided")
	ErrImageTooLarge   = errors.New("image payload exceeds the upload limit")
	ErrNoImageToRemove = errors.New("account has no image to remove")
)
