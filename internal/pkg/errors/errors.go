package errors

import "github.com/pkg/errors"

var (
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrWrongLoginOrPassword = errors.New("wrong login or password")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrCarAlreadyExists     = errors.New("car already exists")
	ErrCarNotFound          = errors.New("car not found")
	ErrRentalNotFound       = errors.New("rental not found")
	ErrInvalidDuration      = errors.New("rental duration must be positive")
	ErrMalformedRecord      = errors.New("malformed record")
)
