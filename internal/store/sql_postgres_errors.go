package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database call hit a transient
// condition. Transient failures surface to callers as ErrStoreUnavailable.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// transientPgCodes are the server error codes that mean "the database is not
// able to answer right now" rather than "the statement is wrong".
var transientPgCodes = map[string]struct{}{
	// class 08, connection exceptions
	pgerrcode.ConnectionException:                           {},
	pgerrcode.ConnectionDoesNotExist:                        {},
	pgerrcode.ConnectionFailure:                             {},
	pgerrcode.SQLClientUnableToEstablishSQLConnection:       {},
	pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection: {},
	// class 40, the row lock taken by a membership toggle can lose a deadlock
	pgerrcode.TransactionRollback:  {},
	pgerrcode.SerializationFailure: {},
	pgerrcode.DeadlockDetected:     {},
	// class 53
	pgerrcode.TooManyConnections: {},
	// class 57, operator intervention and statement_timeout
	pgerrcode.QueryCanceled:    {},
	pgerrcode.AdminShutdown:    {},
	pgerrcode.CannotConnectNow: {},
}

// PostgresErrorClassifier implements ErrorClassificator for errors produced
// by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError. Anything that is not a server
// error is NonRetryable here; connection-level failures such as
// driver.ErrBadConn are handled by the caller.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError classifies a server error by its SQLSTATE. Constraint
// violations (class 23), data exceptions (class 22) and syntax errors
// (class 42) are never transient.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := transientPgCodes[pgErr.Code]; ok {
		return Retryable
	}

	return NonRetryable
}
