package sql

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// Sentinel errors for classified database failures.
var (
	// ErrTableNotFound indicates that a statement referred to a missing table.
	ErrTableNotFound = errors.New("dialect/sql: table not found")
	// ErrDatabase indicates any other database failure.
	ErrDatabase = errors.New("dialect/sql: database error")
)

// TableNotFoundError is returned when the database reports that a table does not exist.
type TableNotFoundError struct {
	Table string
	Cause error
}

// Error implements the error interface.
func (e *TableNotFoundError) Error() string {
	var b strings.Builder
	b.WriteString("dialect/sql: table not found")
	if e.Table != "" {
		b.WriteString(": ")
		b.WriteString(e.Table)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *TableNotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for TableNotFoundError.
func (e *TableNotFoundError) Is(target error) bool {
	return target == ErrTableNotFound
}

// OtherDatabaseError wraps any database failure that is not a missing table.
type OtherDatabaseError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *OtherDatabaseError) Error() string {
	var b strings.Builder
	b.WriteString("dialect/sql: ")
	b.WriteString(e.Op)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *OtherDatabaseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for OtherDatabaseError.
func (e *OtherDatabaseError) Is(target error) bool {
	return target == ErrDatabase
}

// IsTableNotFound reports whether err is, or wraps, a missing-table failure.
func IsTableNotFound(err error) bool {
	var e *TableNotFoundError
	return errors.As(err, &e) || isUndefinedTable(err)
}

// IsOtherDatabaseError reports whether err is, or wraps, an OtherDatabaseError.
func IsOtherDatabaseError(err error) bool {
	var e *OtherDatabaseError
	return errors.As(err, &e)
}

// sqlStateError is an interface for errors that provide SQLSTATE codes.
// Implemented by: pgx, and some MySQL drivers.
type sqlStateError interface {
	SQLState() string
}

// Codes reported for a statement on a missing table.
const (
	pgUndefinedTable   = "42P01"
	mysqlNoSuchTable   = 1146
	mysqlNoSuchTableSS = "42S02"
)

// isUndefinedTable inspects the driver error types in the chain of err.
func isUndefinedTable(err error) bool {
	if err == nil {
		return false
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlNoSuchTable || string(me.SQLState[:]) == mysqlNoSuchTableSS
	}
	var pe *pq.Error
	if errors.As(err, &pe) {
		return pe.Code == pgUndefinedTable
	}
	if e, ok := asError[sqlStateError](err); ok {
		state := e.SQLState()
		return state == pgUndefinedTable || state == mysqlNoSuchTableSS
	}
	return false
}

// classify maps a raw driver error to TableNotFoundError or OtherDatabaseError.
// Errors that are already classified are returned unchanged.
func classify(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var (
		tnf *TableNotFoundError
		ode *OtherDatabaseError
	)
	switch {
	case errors.As(err, &tnf), errors.As(err, &ode):
		return err
	case isUndefinedTable(err):
		return &TableNotFoundError{Table: table, Cause: err}
	default:
		return &OtherDatabaseError{Op: op, Cause: err}
	}
}

// asError attempts to extract an error implementing interface T from the error chain.
func asError[T any](err error) (T, bool) {
	var target T
	for err != nil {
		if e, ok := err.(T); ok {
			return e, true
		}
		err = errors.Unwrap(err)
	}
	return target, false
}
