package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	cases := []struct {
		description  string
		err          error
		expectedKind error
	}{
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, ErrUniqueViolation},
		{"postgres foreign key violation", &pgconn.PgError{Code: "23503"}, ErrReferentialViolation},
		{"postgres value too long", &pgconn.PgError{Code: "22001"}, ErrMalformedInput},
		{"postgres connection failure", &pgconn.PgError{Code: "08006"}, ErrConnectivity},
		{"postgres unreachable", &pgconn.ConnectError{Config: &pgconn.Config{Host: "127.0.0.1"}}, ErrConnectivity},
		{"wrapped postgres unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), ErrUniqueViolation},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, ErrUniqueViolation},
		{"gorm foreign key violated", gorm.ErrForeignKeyViolated, ErrReferentialViolation},
		{"sqlite unique violation", errors.New("UNIQUE constraint failed: users.email"), ErrUniqueViolation},
		{"sqlite foreign key violation", errors.New("FOREIGN KEY constraint failed"), ErrReferentialViolation},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			err := translateError(c.err)

			assert.True(t, errors.Is(err, c.expectedKind), "expected %v to be %v", err, c.expectedKind)
			assert.True(t, errors.Is(err, c.err), "expected %v to wrap %v", err, c.err)
		})
	}
}

func TestTranslateErrorLeavesUnknownErrorsUnchanged(t *testing.T) {
	otherPgErr := &pgconn.PgError{Code: "42P01"}
	assert.Equal(t, error(otherPgErr), translateError(otherPgErr))

	// A reachable server that rejects the login or lacks the database is not a connectivity failure
	for _, code := range []string{"28P01", "3D000"} {
		pgErr := &pgconn.PgError{Code: code}
		err := translateError(fmt.Errorf("failed to connect database: %w", pgErr))
		assert.False(t, errors.Is(err, ErrConnectivity), "expected %v not to be a connectivity failure", err)
		assert.True(t, errors.Is(err, pgErr))
	}

	otherErr := errors.New("something else")
	assert.Equal(t, otherErr, translateError(otherErr))

	assert.Nil(t, translateError(nil))
}

func TestTranslateErrorDoesNotDoubleWrap(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: "23505"})
	assert.Equal(t, err, translateError(err))
}
