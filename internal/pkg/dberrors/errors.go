package dberrors

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation checks if the error is any PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsTransient reports whether the error looks like a transient store failure:
// a timed-out or cancelled statement, or a connection-level failure. These are
// safe to surface as store-unavailable and retry with backoff.
func IsTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 - connection exceptions, 57P01/57P02/57P03 - server shutdown,
		// 53300 - too many connections, 57014 - query cancelled.
		switch pgErr.Code {
		case "57P01", "57P02", "57P03", "53300", "57014":
			return true
		}
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return true
		}
	}

	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}
