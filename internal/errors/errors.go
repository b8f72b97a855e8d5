package errors

import "errors"

// Доменные ошибки. Транспортный слой (handler) маппит их в HTTP status.
var (
	ErrItemNotFound = errors.New("item not found")
	ErrItemDeleted  = errors.New("item is deleted")
	ErrCartNotFound = errors.New("cart not found")

	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("invalid credentials")
	ErrForbidden       = errors.New("forbidden")
)
