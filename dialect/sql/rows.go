package sql

import (
	"fmt"
	"strconv"
	"time"
)

// ColumnScanner is the interface that wraps the standard
// sql.Rows methods used for reading database rows.
type ColumnScanner interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
}

// RowReader reads the current row of a result set through typed accessors
// keyed by column name. NULL values read as the zero value of the accessor
// type. The first failure is recorded and returned by Err; accessors called
// after a failure return zero values.
type RowReader struct {
	rows    ColumnScanner
	columns map[string]int
	values  []any
	err     error
}

// NewRowReader returns a RowReader over rows.
func NewRowReader(rows ColumnScanner) (*RowReader, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}
	return &RowReader{rows: rows, columns: index, values: make([]any, len(columns))}, nil
}

// Next advances to the next row. It returns false when the rows are
// exhausted or a previous read failed.
func (r *RowReader) Next() bool {
	if r.err != nil || !r.rows.Next() {
		return false
	}
	dest := make([]any, len(r.values))
	for i := range r.values {
		r.values[i] = nil
		dest[i] = &r.values[i]
	}
	if err := r.rows.Scan(dest...); err != nil {
		r.err = fmt.Errorf("dialect/sql: scan row: %w", err)
		return false
	}
	return true
}

// Err returns the first scan or conversion failure.
func (r *RowReader) Err() error {
	return r.err
}

// GetInt returns the column value as an int.
func (r *RowReader) GetInt(column string) int {
	return int(r.GetLong(column))
}

// GetLong returns the column value as an int64.
func (r *RowReader) GetLong(column string) int64 {
	v, ok := r.value(column)
	if !ok {
		return 0
	}
	switch v := v.(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case []byte:
		return r.parseInt(column, string(v))
	case string:
		return r.parseInt(column, v)
	default:
		r.convErr(column, v, "int64")
		return 0
	}
}

// GetFloat returns the column value as a float64.
func (r *RowReader) GetFloat(column string) float64 {
	v, ok := r.value(column)
	if !ok {
		return 0
	}
	switch v := v.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case []byte:
		return r.parseFloat(column, string(v))
	case string:
		return r.parseFloat(column, v)
	default:
		r.convErr(column, v, "float64")
		return 0
	}
}

// GetBoolean returns the column value as a bool.
func (r *RowReader) GetBoolean(column string) bool {
	v, ok := r.value(column)
	if !ok {
		return false
	}
	switch v := v.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case []byte:
		return r.parseBool(column, string(v))
	case string:
		return r.parseBool(column, v)
	default:
		r.convErr(column, v, "bool")
		return false
	}
}

// GetString returns the column value as a string.
func (r *RowReader) GetString(column string) string {
	v, ok := r.value(column)
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	default:
		r.convErr(column, v, "string")
		return ""
	}
}

// dateLayouts are tried in order when a date column is returned as text.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// GetDate returns the column value as a time.Time.
func (r *RowReader) GetDate(column string) time.Time {
	v, ok := r.value(column)
	if !ok {
		return time.Time{}
	}
	var s string
	switch v := v.(type) {
	case time.Time:
		return v
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		r.convErr(column, v, "time.Time")
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	r.fail(fmt.Errorf("dialect/sql: column %q: cannot parse %q as date", column, s))
	return time.Time{}
}

// value returns the raw value of a column. ok is false for NULL values,
// unknown columns, or when the reader already failed.
func (r *RowReader) value(column string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	i, ok := r.columns[column]
	if !ok {
		r.fail(fmt.Errorf("dialect/sql: column %q not found in result set", column))
		return nil, false
	}
	v := r.values[i]
	return v, v != nil
}

func (r *RowReader) parseInt(column, s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		r.fail(fmt.Errorf("dialect/sql: column %q: %w", column, err))
	}
	return n
}

func (r *RowReader) parseFloat(column, s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.fail(fmt.Errorf("dialect/sql: column %q: %w", column, err))
	}
	return f
}

func (r *RowReader) parseBool(column, s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		r.fail(fmt.Errorf("dialect/sql: column %q: %w", column, err))
	}
	return b
}

func (r *RowReader) convErr(column string, v any, to string) {
	r.fail(fmt.Errorf("dialect/sql: column %q: cannot convert %T to %s", column, v, to))
}

func (r *RowReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
