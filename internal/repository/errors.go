package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a profile or payment does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition is returned for payment status changes other than
	// pending -> approved and pending -> rejected.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNoGender is returned by the candidate query when the asking profile
	// has no gender to match against.
	ErrNoGender = errors.New("profile gender not set")
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
