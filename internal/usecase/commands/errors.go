package commands

import (
	"lift-reservation/internal/pkg/errs"
	"lift-reservation/internal/usecase/shared"
)

var (
	ErrValidation       = errs.New("validation failed")
	ErrDuplicateBooking = errs.New("duplicate booking for slot")
	ErrNoCapacity       = errs.New("no capacity left for slot")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrForbidden        = errs.New("booking belongs to another user")
	ErrStoreUnavailable = shared.ErrStoreUnavailable
)
