package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx(t *testing.T) {
	t.Run("Success_Commit", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectCommit()

		err = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
			_, ok := GetTx(ctx, db).(*sql.Tx)
			assert.True(t, ok)
			return nil
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_RollbackOnFailure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectRollback()

		fnErr := errors.New("insert failed")
		err = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
			return fnErr
		})

		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_BeginFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		beginErr := errors.New("begin failed")
		mock.ExpectBegin().WillReturnError(beginErr)

		called := false
		err = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, beginErr)
		assert.False(t, called)
	})

	t.Run("Success_NestedReusesTransaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectCommit()

		tm := NewTxManager(db)
		err = tm.WithTx(context.Background(), func(outer context.Context) error {
			return tm.WithTx(outer, func(inner context.Context) error {
				assert.Same(t, GetTx(outer, db), GetTx(inner, db))
				return nil
			})
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWithTx_RollbackAndCommitFailures(t *testing.T) {
	t.Run("Error_RollbackFailureIsJoined", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		rbErr := errors.New("connection lost")
		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(rbErr)

		fnErr := errors.New("outbox insert failed")
		err = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
			return fnErr
		})

		assert.ErrorIs(t, err, fnErr)
		assert.ErrorIs(t, err, rbErr)
	})

	t.Run("Error_CommitFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		commitErr := errors.New("serialization failure")
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(commitErr)

		err = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
			return nil
		})

		assert.ErrorIs(t, err, commitErr)
		assert.ErrorContains(t, err, "failed to commit transaction")
	})

	t.Run("Panic_RollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.False(t, InTx(context.Background()))

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
		assert.True(t, InTx(ctx))
		return nil
	}))
}

func TestGetTx_WithoutTransaction(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.Equal(t, db, GetTx(context.Background(), db))
}
