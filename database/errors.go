package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SQLSTATE codes for the integrity violations the schema can raise.
const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
	NotNullViolationCode    = "23502"
	CheckViolationCode      = "23514"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation matches every *ConstraintError.
	ErrConstraintViolation = errors.New("constraint violation")

	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
	ErrNotNullViolation    = errors.New("not null constraint violation")
	ErrCheckViolation      = errors.New("check constraint violation")
)

var kindByCode = map[string]error{
	UniqueViolationCode:     ErrUniqueViolation,
	ForeignKeyViolationCode: ErrForeignKeyViolation,
	NotNullViolationCode:    ErrNotNullViolation,
	CheckViolationCode:      ErrCheckViolation,
}

// ConstraintError is a write rejected by the database schema.
type ConstraintError struct {
	Kind       error
	Constraint string
	Table      string
	Column     string
	Err        error
}

func (e *ConstraintError) Error() string {
	msg := e.Kind.Error()
	if e.Table != "" {
		msg += " on " + e.Table
	}
	if e.Constraint != "" {
		msg += fmt.Sprintf(" (%s)", e.Constraint)
	} else if e.Column != "" {
		msg += fmt.Sprintf(" (%s)", e.Column)
	}
	return msg
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation || target == e.Kind
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// Translate maps driver and gorm errors onto this package's errors. Errors it
// does not recognise are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var ce *ConstraintError
	if errors.As(err, &ce) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classify(pgErr.Code, pgErr.ConstraintName, pgErr.TableName, pgErr.ColumnName, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classify(string(pqErr.Code), pqErr.Constraint, pqErr.Table, pqErr.Column, err)
	}

	return err
}

func classify(code, constraint, table, column string, err error) error {
	kind, ok := kindByCode[code]
	if !ok {
		return err
	}
	return &ConstraintError{
		Kind:       kind,
		Constraint: constraint,
		Table:      table,
		Column:     column,
		Err:        err,
	}
}
