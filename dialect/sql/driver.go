package sql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/syssam/crudgen/dialect"
)

// ExecQuerier wraps the standard Exec and Query methods.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Executor runs named-parameter statements. Generated repositories depend on
// it, and *Driver implements it.
type Executor interface {
	Exec(ctx context.Context, query string, params map[string]any) (int64, error)
	Query(ctx context.Context, query string, params map[string]any, fn func(*RowReader) error) error
}

var _ Executor = (*Driver)(nil)

// Driver executes named-parameter statements against an ExecQuerier.
type Driver struct {
	ExecQuerier
	dialect string
}

// NewDriver creates a new Driver with the given ExecQuerier and dialect.
func NewDriver(dialect string, eq ExecQuerier) *Driver {
	return &Driver{ExecQuerier: eq, dialect: dialect}
}

// Open wraps the database/sql.Open method and returns a Driver for it.
func Open(dialect, source string) (*Driver, error) {
	db, err := sql.Open(dialect, source)
	if err != nil {
		return nil, err
	}
	return NewDriver(dialect, db), nil
}

// OpenDB wraps the given database/sql.DB with a Driver.
func OpenDB(dialect string, db *sql.DB) *Driver {
	return NewDriver(dialect, db)
}

// DB returns the underlying *sql.DB instance.
func (d *Driver) DB() *sql.DB {
	db, _ := d.ExecQuerier.(*sql.DB)
	return db
}

// Dialect returns the dialect name of the driver.
func (d *Driver) Dialect() string {
	// If the underlying driver is wrapped with a telemetry driver.
	for _, name := range dialect.Dialects {
		if strings.HasPrefix(d.dialect, name) {
			return name
		}
	}
	return d.dialect
}

// Close closes the underlying database, if the driver owns one.
func (d *Driver) Close() error {
	if db := d.DB(); db != nil {
		return db.Close()
	}
	return nil
}

// Exec binds params into query, executes it and returns the number of affected rows.
func (d *Driver) Exec(ctx context.Context, query string, params map[string]any) (int64, error) {
	stmt, args, err := Bind(d.Dialect(), query, params)
	if err != nil {
		return 0, fmt.Errorf("dialect/sql: exec: %w", err)
	}
	res, err := d.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, classify("exec", "", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify("rows affected", "", err)
	}
	return n, nil
}

// Query binds params into query, executes it and calls fn once per result row.
// Iteration stops at the first error returned by fn.
func (d *Driver) Query(ctx context.Context, query string, params map[string]any, fn func(*RowReader) error) (rerr error) {
	stmt, args, err := Bind(d.Dialect(), query, params)
	if err != nil {
		return fmt.Errorf("dialect/sql: query: %w", err)
	}
	rows, err := d.QueryContext(ctx, stmt, args...)
	if err != nil {
		return classify("query", "", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && rerr == nil {
			rerr = classify("close rows", "", cerr)
		}
	}()
	rs, err := NewRowReader(rows)
	if err != nil {
		return classify("columns", "", err)
	}
	for rs.Next() {
		if err := fn(rs); err != nil {
			return err
		}
	}
	if err := rs.Err(); err != nil {
		return err
	}
	if err := rows.Err(); err != nil {
		return classify("query", "", err)
	}
	return nil
}
