// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/matchbot/internal/coordinator"
	"github.com/oggyb/matchbot/internal/ledger"
	"github.com/oggyb/matchbot/internal/registration"
	"github.com/oggyb/matchbot/internal/repository"
	"github.com/oggyb/matchbot/internal/session"
	"github.com/oggyb/matchbot/internal/utils/pagination"
)

// Map converts domain/repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, repository.ErrNotFound),
		errors.Is(err, ledger.ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, session.ErrNoCandidates),
		errors.Is(err, session.ErrDepleted):
		return status.Error(codes.NotFound, err.Error())

	// no session is an invalid state, kept apart from a missing record
	case errors.Is(err, session.ErrNoSession),
		errors.Is(err, repository.ErrInvalidTransition),
		errors.Is(err, repository.ErrNoGender),
		errors.Is(err, coordinator.ErrIncompleteProfile),
		errors.Is(err, coordinator.ErrBlocked),
		errors.Is(err, registration.ErrAlreadyRegistered):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, session.ErrCoolingDown),
		errors.Is(err, registration.ErrTooManyPhotos):
		return status.Error(codes.ResourceExhausted, err.Error())

	case errors.Is(err, coordinator.ErrSelfAction),
		errors.Is(err, coordinator.ErrEmptyMessage),
		errors.Is(err, coordinator.ErrUnknownPackage),
		errors.Is(err, coordinator.ErrInvalidComplaint),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, registration.ErrInvalidField),
		errors.Is(err, pagination.ErrInvalidToken):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, registration.ErrDuplicatePhoto):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// AlreadyExists creates a gRPC AlreadyExists error.
func AlreadyExists(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}

// Unauthenticated creates a gRPC Unauthenticated error.
func Unauthenticated(msg string) error {
	return status.Error(codes.Unauthenticated, msg)
}
