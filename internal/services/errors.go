package services

import "github.com/pkg/errors"

var (
	// ErrNotFound covers referenced rows that do not exist or are not
	// visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the actor lacks the role or ownership required
	// for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation covers malformed or inconsistent input.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateApplication means the seeker already has an application
	// for the advert, regardless of that application's status.
	ErrDuplicateApplication = errors.New("application already exists for this advert")

	// ErrInactiveAdvert means the advert is not accepting applications.
	ErrInactiveAdvert = errors.New("advert is not active")
)
