package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidAccountID is returned when a caller-supplied identifier is
	// not a valid ObjectID hex string and therefore cannot match any
	// stored account.
	ErrInvalidAccountID = errors.New("invalid account id")

	// ErrNoAccountWasFound is returned when a query expected to match an
	// account record produces an empty result set.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrEmailAlreadyExists is returned when an insert or update collides
	// with the unique index on the email field.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when an insert or update
	// collides with the unique index on the username field.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrAccountAlreadyExists is returned when a duplicate-key violation
	// cannot be attributed to a specific field.
	ErrAccountAlreadyExists = errors.New("account already exists")
)

// Low-level storage operation errors. These are returned (or wrapped) by
// adapter methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrExecutingQuery is returned when a read or write against the
	// document database fails at the driver level.
	ErrExecutingQuery = errors.New("error executing database operation")

	// ErrDecodingDocument is returned when decoding a stored document into
	// a model fails.
	ErrDecodingDocument = errors.New("error decoding stored document")

	// ErrImageStoreUnavailable is returned when an upload or delete
	// against the object-storage provider fails.
	ErrImageStoreUnavailable = errors.New("image store operation failed")
)
