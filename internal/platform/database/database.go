// Package database opens the relational store, applies the schema and
// classifies driver errors into platform sentinels.
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"holocron/pkg/platform/sentinel"
)

// Dialect identifies the SQL backend.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
	// DialectMemory selects the in-process stores; no *sql.DB is opened.
	DialectMemory Dialect = "memory"
)

const defaultSQLitePath = "/tmp/test.db"

//go:embed schema/*.sql
var schemaFS embed.FS

// Target is a parsed DATABASE_URL.
type Target struct {
	Dialect Dialect
	DSN     string
}

// ParseURL maps a DATABASE_URL onto a backend. postgres:// is accepted and
// normalized to postgresql://; memory:// selects in-process stores; any other
// value is treated as a SQLite file path (sqlite:// prefix optional).
func ParseURL(raw string) Target {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return Target{Dialect: DialectSQLite, DSN: defaultSQLitePath}
	case strings.HasPrefix(raw, "memory://"):
		return Target{Dialect: DialectMemory}
	case strings.HasPrefix(raw, "postgres://"):
		return Target{Dialect: DialectPostgres, DSN: "postgresql://" + strings.TrimPrefix(raw, "postgres://")}
	case strings.HasPrefix(raw, "postgresql://"):
		return Target{Dialect: DialectPostgres, DSN: raw}
	case strings.HasPrefix(raw, "sqlite://"):
		return Target{Dialect: DialectSQLite, DSN: strings.TrimPrefix(raw, "sqlite://")}
	}
	return Target{Dialect: DialectSQLite, DSN: raw}
}

// DB is a *sql.DB that remembers its dialect.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open connects to target and pings it. Memory targets are rejected; the
// caller selects in-process stores for those.
func Open(ctx context.Context, target Target, maxOpenConns int) (*DB, error) {
	var (
		driver string
		dsn    = target.DSN
	)
	switch target.Dialect {
	case DialectPostgres:
		driver = "pgx"
	case DialectSQLite:
		driver = "sqlite"
		dsn = sqliteDSN(dsn)
	default:
		return nil, fmt.Errorf("database: dialect %q has no SQL connection", target.Dialect)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", target.Dialect, err)
	}
	if target.Dialect == DialectSQLite {
		// One writer; also keeps :memory: databases on a single connection.
		db.SetMaxOpenConns(1)
	} else if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping %s: %w", target.Dialect, err)
	}
	return &DB{DB: db, Dialect: target.Dialect}, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate applies the embedded schema for the connection's dialect. Every
// statement is idempotent.
func Migrate(ctx context.Context, db *DB) error {
	raw, err := schemaFS.ReadFile("schema/" + string(db.Dialect) + ".sql")
	if err != nil {
		return fmt.Errorf("database: no schema for %s: %w", db.Dialect, err)
	}
	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("database: migrate: %w", err)
		}
	}
	return nil
}

// Rebind rewrites ? placeholders to $n for PostgreSQL. Queries must not
// contain literal question marks.
func Rebind(dialect Dialect, query string) string {
	if dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ClassifyError wraps integrity violations with sentinel.ErrConstraint while
// keeping the driver message as the error text.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", sentinel.ErrNotFound, err)
	}
	if IsConstraintViolation(err) {
		return &sentinel.ConstraintViolation{Detail: err.Error(), Err: err}
	}
	return err
}

// IsConstraintViolation reports NOT NULL, UNIQUE, FOREIGN KEY and CHECK
// failures from either driver.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// SQLSTATE class 23: integrity constraint violation.
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return strings.Contains(err.Error(), "constraint failed")
}
