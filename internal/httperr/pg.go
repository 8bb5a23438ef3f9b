package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes que viram erros de negócio.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgExclusionViolation  = "23P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// FromDB traduz erros do banco em BusinessError. Erros sem tradução
// voltam intactos.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if CodeOf(err) != "" {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBusiness(CodeNotFound)
	}

	switch pgCode(err) {
	case pgUniqueViolation, pgExclusionViolation:
		return ErrBusiness(CodeDuplicate)
	case pgForeignKeyViolation:
		return ErrBusiness(CodeInvalidReference)
	case pgCheckViolation, pgNotNullViolation:
		return ErrBusiness(CodeConstraintViolation)
	}
	return err
}
