package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"student-control/internal/models"
)

// Translate maps driver failures onto the store error taxonomy.
func Translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrap(models.ErrNotFound, op)
	}
	if isConstraint(err) {
		return errors.Wrapf(models.ErrConstraintViolation, "%s: %v", op, err)
	}
	return models.NewStoreError(op, err)
}

func isConstraint(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// class 23: integrity constraint violation
		return pqErr.Code.Class() == "23"
	}

	return false
}

// CheckAffected turns an UPDATE/DELETE that touched nothing into ErrNotFound.
func CheckAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return models.NewStoreError(op, err)
	}
	if n == 0 {
		return errors.Wrap(models.ErrNotFound, op)
	}
	return nil
}

// BoolToInt stores flags as 0/1 on every dialect.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
