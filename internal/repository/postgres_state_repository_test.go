package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStateRepository_Load(t *testing.T) {
	ctx := context.Background()
	selectQuery := regexp.QuoteMeta(`SELECT value FROM app_state WHERE key = $1`)

	t.Run("stored blob is decoded", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		orig := fixtureState()
		data, err := encodeState(orig)
		require.NoError(t, err)

		mock.ExpectQuery(selectQuery).
			WithArgs(DefaultStateKey).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(data))

		st, err := NewPostgresStateRepository(db, DefaultStateKey).Load(ctx)
		require.NoError(t, err)
		assertSameState(t, orig, st)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is an empty state", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(selectQuery).
			WithArgs(DefaultStateKey).
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		st, err := NewPostgresStateRepository(db, DefaultStateKey).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, st.Accounts)
		assert.Empty(t, st.Snapshots)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing table is an empty state", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(selectQuery).
			WithArgs(DefaultStateKey).
			WillReturnError(&pq.Error{Code: pqUndefinedTable})

		st, err := NewPostgresStateRepository(db, DefaultStateKey).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, st.Accounts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure is returned", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(selectQuery).
			WithArgs(DefaultStateKey).
			WillReturnError(errors.New("connection reset"))

		_, err = NewPostgresStateRepository(db, DefaultStateKey).Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("malformed blob is returned as an error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(selectQuery).
			WithArgs(DefaultStateKey).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"accounts":[`)))

		_, err = NewPostgresStateRepository(db, DefaultStateKey).Load(ctx)
		assert.Error(t, err)
	})
}

func TestPostgresStateRepository_Save(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := fixtureState()
	data, err := encodeState(orig)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO app_state (key, value, updated_at)`)).
		WithArgs("custom-key", string(data)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewPostgresStateRepository(db, "custom-key").Save(ctx, orig))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStateRepository_SaveFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO app_state`)).
		WillReturnError(errors.New("read-only transaction"))

	err = NewPostgresStateRepository(db, DefaultStateKey).Save(context.Background(), fixtureState())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save state")
}

func TestPostgresStateRepository_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS app_state`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewPostgresStateRepository(db, DefaultStateKey).EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
