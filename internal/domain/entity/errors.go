package entity

import "errors"

// Sentinel errors shared across usecases and repositories. Handlers map these
// onto HTTP status codes; anything not in this list surfaces as a 500.
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrPartnerNotFound        = errors.New("food partner not found")
	ErrFoodNotFound           = errors.New("food item not found")
	ErrEmailTaken             = errors.New("account with this email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidInteractionKind = errors.New("invalid interaction kind")

	// ErrDuplicateInteraction is returned by the interaction repository when a
	// concurrent insert loses the unique-index race. The interaction usecase
	// resolves it internally; it is never surfaced to a client.
	ErrDuplicateInteraction = errors.New("interaction already exists")
)
