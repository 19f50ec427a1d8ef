package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same e-mail already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCommentNotFound is returned when a comment targeted by id does not
	// exist.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrCommentNotOwned is returned when a comment exists but belongs to a
	// different user than the one asking to delete it.
	ErrCommentNotOwned = errors.New("comment is owned by another user")

	// ErrVideoNotSaved is returned when an INSERT of a catalog row completes
	// without error but affects no rows.
	ErrVideoNotSaved = errors.New("video was not saved")

	// ErrStoreUnavailable marks failures caused by the backing store being
	// unreachable, overloaded or too slow (connection loss, deadline expiry,
	// transient transaction rollbacks). It is always joined with the
	// underlying error.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrUnknownMembershipKind is returned when a membership operation is
	// called with a kind other than liked or shared.
	ErrUnknownMembershipKind = errors.New("unknown membership kind")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Object storage errors.
var (
	// ErrPuttingObject is returned when uploading a media object fails.
	ErrPuttingObject = errors.New("failed to put object")

	// ErrPresigningObject is returned when a download URL cannot be signed.
	ErrPresigningObject = errors.New("failed to presign object")
)
