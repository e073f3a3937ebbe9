package service

import "errors"

// Domain errors. Handlers map these to HTTP status codes with errors.Is;
// anything else degrades to a generic 500.
var (
	// ErrValidation marks bad or missing input; wrap it for detail:
	// fmt.Errorf("%w: text required", ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrContentRejected is returned when the toxicity gate blocks a write.
	ErrContentRejected = errors.New("message flagged for profanity/toxicity")

	// ErrInvalidCredentials covers both unknown identifier and wrong
	// password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConflict is returned when the email or username is already taken.
	ErrConflict = errors.New("user already exists")

	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("not the owner")
)
