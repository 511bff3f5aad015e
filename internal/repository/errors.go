package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation      = "23505"
	PgErrSerializationFailure = "40001"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsSerializationFailure: под Serializable второй из гонящихся писателей
// получает 40001 на коммите, сервисы мапят это в свой ErrConflict.
func IsSerializationFailure(err error) bool {
	return IsPgErrorWithCode(err, PgErrSerializationFailure)
}
