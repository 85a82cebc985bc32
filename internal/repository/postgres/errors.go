package postgres

import (
	"database/sql"
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/transit-network/internal/pkg/errors"
)

// SQLSTATE коды, которые различаем явно
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

const (
	constraintStopLineTriple = "uq_stop_line_triple"
	constraintStopLineStop   = "stop_line_bus_stop_id_fkey"
	constraintStopLineLine   = "stop_line_bus_line_id_fkey"
	constraintLineCompany    = "ft_bus_line_company_id_fkey"
)

// pgError достаёт SQLSTATE и имя ограничения. Работает с обоими драйверами:
// pgx (сервис) и lib/pq (тестовые подключения).
func pgError(err error) (code, constraint string, ok bool) {
	var pgxErr *pgconn.PgError
	if stderrors.As(err, &pgxErr) {
		return pgxErr.Code, pgxErr.ConstraintName, true
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}

	return "", "", false
}

func isNoRows(err error) bool {
	return stderrors.Is(err, sql.ErrNoRows)
}

// mapConstraintError переводит нарушения ограничений при insert/update в ошибки домена.
// Для прочих ошибок возвращает nil.
func mapConstraintError(err error) *errors.AppError {
	code, constraint, ok := pgError(err)
	if !ok {
		return nil
	}

	switch code {
	case codeUniqueViolation:
		if constraint == constraintStopLineTriple {
			return errors.ErrDuplicateAssociation
		}
		return errors.ErrDuplicateAssociation.WithMessage("Record violates a uniqueness constraint")

	case codeForeignKeyViolation:
		switch constraint {
		case constraintStopLineStop:
			return errors.ErrBusStopNotFound
		case constraintStopLineLine:
			return errors.ErrBusLineNotFound
		case constraintLineCompany:
			return errors.ErrCompanyNotFound
		}
		return errors.ErrHasDependents
	}

	return nil
}

// isForeignKeyViolation - при delete означает, что на запись ещё ссылаются
func isForeignKeyViolation(err error) bool {
	code, _, ok := pgError(err)
	return ok && code == codeForeignKeyViolation
}
