package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestTxManagerCommitsOnSuccess(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()
	manager := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE subject_marks SET score = $1 WHERE id = $2")).
		WithArgs(90.0, "mark-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := manager.WithinTx(context.Background(), func(tx Tx) error {
		_, execErr := tx.ExecContext(context.Background(), "UPDATE subject_marks SET score = $1 WHERE id = $2", 90.0, "mark-1")
		return execErr
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManagerRollsBackOnError(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()
	manager := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE subject_marks").
		WithArgs(90.0, "mark-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	boom := errors.New("second item failed")
	err := manager.WithinTx(context.Background(), func(tx Tx) error {
		if _, execErr := tx.ExecContext(context.Background(), "UPDATE subject_marks SET score = $1 WHERE id = $2", 90.0, "mark-1"); execErr != nil {
			return execErr
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManagerRollsBackOnPanic(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()
	manager := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = manager.WithinTx(context.Background(), func(tx Tx) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManagerBeginFailure(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()
	manager := NewTxManager(db)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	err := manager.WithinTx(context.Background(), func(tx Tx) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin tx")
	assert.NoError(t, mock.ExpectationsWereMet())
}
