package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgErr(code, column string) error {
	return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code, ColumnName: column, Message: "pg says no"})
}

func TestDBErrorCode(t *testing.T) {
	cases := map[string]ErrorCode{
		"23505": ErrorCodeDuplicateKey,
		"23503": ErrorCodeInvalidArgument,
		"22P02": ErrorCodeInvalidArgument,
		"23514": ErrorCodeValidation,
		"23502": ErrorCodeValidation,
		"57P03": ErrorCodeUnavailable,
		"40001": ErrorCodeDB,
		"XX000": ErrorCodeDB,
	}
	for sqlstate, want := range cases {
		got, ok := DBErrorCode(pgErr(sqlstate, ""))
		assert.True(t, ok, sqlstate)
		assert.Equal(t, want, got, sqlstate)
	}
	_, ok := DBErrorCode(stderrs.New("plain"))
	assert.False(t, ok)
}

func TestFromPostgres(t *testing.T) {
	assert.Nil(t, FromPostgres(nil, "x"))

	err := FromPostgres(pgErr("23514", "source"), "insert prediction")
	e, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, ErrorCodeValidation, e.Code())
	assert.Equal(t, "source", e.Field())
	assert.Contains(t, err.Error(), "insert prediction")

	assert.True(t, IsCode(FromPostgres(stderrs.New("dial tcp"), "load"), ErrorCodeDB))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(pgErr("40001", "")))
	assert.True(t, Retryable(pgErr("40P01", "")))
	assert.False(t, Retryable(pgErr("23505", "")))
	assert.True(t, Retryable(stderrs.New("commit unexpectedly resulted in rollback")))
	assert.False(t, Retryable(fmt.Errorf("tx: %w", context.Canceled)))
	assert.False(t, Retryable(nil))
	assert.False(t, Retryable(stderrs.New("syntax error")))
}
