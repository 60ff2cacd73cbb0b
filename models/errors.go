package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUniqueViolation      = errors.New("uniqueness violation")
	ErrReferentialViolation = errors.New("referential violation")
	ErrConnectivity         = errors.New("connectivity failure")
	ErrMalformedInput       = errors.New("malformed input")
)

// Postgres SQLSTATE codes
const (
	pgUniqueViolation        = "23505"
	pgForeignKeyViolation    = "23503"
	pgStringDataTruncation   = "22001"
	pgConnectionExceptionCls = "08"
)

// Error tags a backend error with one of the Err* kinds.
// errors.Is matches both the kind and the wrapped backend error
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// translateError tags err with its kind. Errors of an unknown kind are returned unchanged
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var storeErr *Error
	if errors.As(err, &storeErr) {
		return err
	}

	if kind := errorKind(err); kind != nil {
		return &Error{Kind: kind, Err: err}
	}

	return err
}

func errorKind(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return ErrUniqueViolation
		case pgErr.Code == pgForeignKeyViolation:
			return ErrReferentialViolation
		case pgErr.Code == pgStringDataTruncation:
			return ErrMalformedInput
		case strings.HasPrefix(pgErr.Code, pgConnectionExceptionCls):
			return ErrConnectivity
		}
		return nil
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ErrConnectivity
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrUniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferentialViolation
	}

	// sqlite only reports constraint failures through the message
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrUniqueViolation
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrReferentialViolation
	}

	return nil
}
