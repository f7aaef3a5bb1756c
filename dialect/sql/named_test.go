package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/crudgen/dialect"
)

func TestBind(t *testing.T) {
	params := map[string]any{"id": 1, "name": "gear", "active": true}
	tests := []struct {
		name    string
		dialect string
		query   string
		want    string
		args    []any
	}{
		{
			name:    "mysql",
			dialect: dialect.MySQL,
			query:   "UPDATE `widget` SET `name` = :name, `active` = :active WHERE `id` = :id",
			want:    "UPDATE `widget` SET `name` = ?, `active` = ? WHERE `id` = ?",
			args:    []any{"gear", true, 1},
		},
		{
			name:    "postgres",
			dialect: dialect.Postgres,
			query:   `UPDATE "widget" SET "name" = :name, "active" = :active WHERE "id" = :id`,
			want:    `UPDATE "widget" SET "name" = $1, "active" = $2 WHERE "id" = $3`,
			args:    []any{"gear", true, 1},
		},
		{
			name:    "repeated parameter",
			dialect: dialect.Postgres,
			query:   "SELECT * FROM t WHERE a = :id OR b = :id",
			want:    "SELECT * FROM t WHERE a = $1 OR b = $2",
			args:    []any{1, 1},
		},
		{
			name:    "quotes and casts are untouched",
			dialect: dialect.Postgres,
			query:   `SELECT ':name', "odd:col", x::text FROM t WHERE id = :id`,
			want:    `SELECT ':name', "odd:col", x::text FROM t WHERE id = $1`,
			args:    []any{1},
		},
		{
			name:    "no parameters",
			dialect: dialect.SQLite,
			query:   "SELECT id FROM widget",
			want:    "SELECT id FROM widget",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, args, err := Bind(tt.dialect, tt.query, params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestBind_Errors(t *testing.T) {
	_, _, err := Bind(dialect.MySQL, "SELECT * FROM t WHERE id = :id", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"id"`)

	_, _, err = Bind(dialect.MySQL, "SELECT 'open FROM t", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated")
}
