package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors shared across repository, service and handler layers.
// NotFound is always derived from row counts, never from a store exception.
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
)

// Postgres error code for foreign_key_violation.
const fkViolationCode = "23503"

// isForeignKeyViolation reports whether err is a foreign-key violation raised
// by Postgres. The conditional inserts read the parent inside the same
// statement, but a delete committing between the statement's snapshot and the
// constraint check can still surface as 23503; that is the parent vanishing,
// not a storage fault.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == fkViolationCode
}
