package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "holocron/pkg/domain-errors"
	"holocron/pkg/platform/sentinel"
	txcontext "holocron/pkg/platform/tx"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		raw     string
		dialect Dialect
		dsn     string
	}{
		{"", DialectSQLite, "/tmp/test.db"},
		{"memory://", DialectMemory, ""},
		{"postgres://u:p@db:5432/holocron", DialectPostgres, "postgresql://u:p@db:5432/holocron"},
		{"postgresql://u:p@db/holocron?sslmode=disable", DialectPostgres, "postgresql://u:p@db/holocron?sslmode=disable"},
		{"sqlite:///var/lib/holocron.db", DialectSQLite, "/var/lib/holocron.db"},
		{"./local.db", DialectSQLite, "./local.db"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseURL(tt.raw)
			assert.Equal(t, tt.dialect, got.Dialect)
			assert.Equal(t, tt.dsn, got.DSN)
		})
	}
}

func TestRebind(t *testing.T) {
	q := "SELECT id FROM fav_people WHERE user_id = ? AND people_id = ?"
	assert.Equal(t, q, Rebind(DialectSQLite, q))
	assert.Equal(t, "SELECT id FROM fav_people WHERE user_id = $1 AND people_id = $2", Rebind(DialectPostgres, q))
}

func TestClassifyError(t *testing.T) {
	t.Run("postgres not null", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23502", Message: `null value in column "gender" violates not-null constraint`}
		err := ClassifyError(pgErr)
		assert.ErrorIs(t, err, sentinel.ErrConstraint)
		assert.Equal(t, pgErr.Error(), err.Error())
	})

	t.Run("postgres other class", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
		assert.NotErrorIs(t, ClassifyError(pgErr), sentinel.ErrConstraint)
	})

	t.Run("sqlite message", func(t *testing.T) {
		err := ClassifyError(errors.New("constraint failed: NOT NULL constraint failed: people.gender (1299)"))
		assert.ErrorIs(t, err, sentinel.ErrConstraint)
		assert.Contains(t, err.Error(), "people.gender")
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, ClassifyError(nil))
	})
}

func openSQLite(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), Target{Dialect: DialectSQLite, DSN: filepath.Join(t.TempDir(), "holocron.db")}, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func TestMigrate_SQLiteIsIdempotent(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, Migrate(context.Background(), db))

	var count int
	err := db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('user','people','planet','fav_people','fav_planet')`,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestSQLiteEnforcesForeignKeys(t *testing.T) {
	db := openSQLite(t)
	_, err := db.ExecContext(context.Background(), `INSERT INTO fav_people (user_id, people_id) VALUES (99, 99)`)
	require.Error(t, err)
	assert.ErrorIs(t, ClassifyError(err), sentinel.ErrConstraint)
}

func TestOpen_MemoryHasNoConnection(t *testing.T) {
	_, err := Open(context.Background(), Target{Dialect: DialectMemory}, 0)
	assert.Error(t, err)
}

func TestTransactor(t *testing.T) {
	db := openSQLite(t)
	transactor := NewTransactor(db.DB)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		err := transactor.RunInTx(ctx, func(ctx context.Context) error {
			_, inTx := txcontext.From(ctx)
			assert.True(t, inTx)
			_, err := txcontext.Executor(ctx, db.DB).ExecContext(ctx,
				`INSERT INTO planet (name, population, terrain) VALUES ('Hoth', 0, 'ice')`)
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, countRows(t, db, "planet"))
	})

	t.Run("rollback returns fn error unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		err := transactor.RunInTx(ctx, func(ctx context.Context) error {
			_, err := txcontext.Executor(ctx, db.DB).ExecContext(ctx,
				`INSERT INTO planet (name, population, terrain) VALUES ('Dagobah', 0, 'swamp')`)
			require.NoError(t, err)
			return boom
		})
		assert.Same(t, boom, err)
		assert.Equal(t, 1, countRows(t, db, "planet"))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := transactor.RunInTx(cancelled, func(context.Context) error { return nil })
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
	})
}

func TestNopTransactor(t *testing.T) {
	called := false
	err := NopTransactor{}.RunInTx(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func countRows(t *testing.T, db *DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
