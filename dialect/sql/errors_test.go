package sql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sqlStateErr string

func (e sqlStateErr) Error() string    { return "state " + string(e) }
func (e sqlStateErr) SQLState() string { return string(e) }

func TestIsTableNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql number", &mysql.MySQLError{Number: 1146, Message: "Table 'app.widget' doesn't exist"}, true},
		{"mysql sqlstate", &mysql.MySQLError{Number: 9999, SQLState: [5]byte{'4', '2', 'S', '0', '2'}}, true},
		{"mysql access denied", &mysql.MySQLError{Number: 1045, Message: "Access denied"}, false},
		{"postgres undefined table", &pq.Error{Code: "42P01", Message: `relation "widget" does not exist`}, true},
		{"postgres syntax error", &pq.Error{Code: "42601"}, false},
		{"sqlstate interface", sqlStateErr("42P01"), true},
		{"wrapped", fmt.Errorf("probe: %w", &pq.Error{Code: "42P01"}), true},
		{"classified", &TableNotFoundError{Table: "widget"}, true},
		{"message text alone is not enough", errors.New("table widget already exists"), false},
		{"plain", errors.New("Table 'widget' doesn't exist"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTableNotFound(tt.err))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("missing table", func(t *testing.T) {
		cause := &mysql.MySQLError{Number: 1146}
		err := classify("probe", "widget", cause)
		var tnf *TableNotFoundError
		require.True(t, errors.As(err, &tnf))
		assert.Equal(t, "widget", tnf.Table)
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrTableNotFound)
	})

	t.Run("other", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := classify("exec", "", cause)
		var ode *OtherDatabaseError
		require.True(t, errors.As(err, &ode))
		assert.Equal(t, "exec", ode.Op)
		assert.ErrorIs(t, err, ErrDatabase)
		assert.Equal(t, "dialect/sql: exec: connection refused", err.Error())
	})

	t.Run("already classified", func(t *testing.T) {
		orig := &OtherDatabaseError{Op: "query"}
		assert.Same(t, orig, classify("exec", "", orig))
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, classify("exec", "", nil))
	})
}

func TestTableNotFoundError_Error(t *testing.T) {
	assert.Equal(t, "dialect/sql: table not found: widget", (&TableNotFoundError{Table: "widget"}).Error())
	err := &TableNotFoundError{Table: "widget", Cause: errors.New("boom")}
	assert.Equal(t, "dialect/sql: table not found: widget: boom", err.Error())
}
