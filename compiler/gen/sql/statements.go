package sql

import (
	"strconv"
	"strings"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/dialect"
)

// Statements holds the SQL statements of an entity. Values are bound with
// ":name" parameters, see dialect/sql.Bind.
type Statements struct {
	Insert string
	Select string
	Update string
	Delete string
}

// NewStatements builds the statements of e for dialect d.
func NewStatements(d string, e *gen.Entity) *Statements {
	var (
		table = dialect.Quote(d, e.Table)
		id    = dialect.Quote(d, e.ID.Column.Name) + " = :" + paramName(e, e.ID)
	)
	return &Statements{
		Insert: insertStatement(d, e, table),
		Select: "SELECT " + columnList(d, e.Fields) + " FROM " + table,
		Update: "UPDATE " + table + " SET " + setList(d, e) + " WHERE " + id,
		Delete: "DELETE FROM " + table + " WHERE " + id,
	}
}

func insertStatement(d string, e *gen.Entity, table string) string {
	fields := insertFields(e)
	if len(fields) == 0 {
		if d == dialect.MySQL {
			return "INSERT INTO " + table + " () VALUES ()"
		}
		return "INSERT INTO " + table + " DEFAULT VALUES"
	}
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = ":" + paramName(e, f)
	}
	return "INSERT INTO " + table + " (" + columnList(d, fields) + ") VALUES (" + strings.Join(values, ", ") + ")"
}

func setList(d string, e *gen.Entity) string {
	fields := e.MutableFields()
	if len(fields) == 0 {
		// Entities without other columns update their identifier in place.
		fields = []*gen.Field{e.ID}
	}
	sets := make([]string, len(fields))
	for i, f := range fields {
		sets[i] = dialect.Quote(d, f.Column.Name) + " = :" + paramName(e, f)
	}
	return strings.Join(sets, ", ")
}

func columnList(d string, fields []*gen.Field) string {
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = dialect.Quote(d, f.Column.Name)
	}
	return strings.Join(columns, ", ")
}

// paramName returns the statement parameter of f.
func paramName(e *gen.Entity, f *gen.Field) string {
	return paramNames(e)[f]
}

// paramNames returns the statement parameters of all fields of e. A field
// is bound by its column name when that is a valid parameter. Other fields
// get p<index>, suffixed with "_" while the name is taken by a column.
func paramNames(e *gen.Entity) map[*gen.Field]string {
	var (
		names = make(map[*gen.Field]string, len(e.Fields))
		taken = make(map[string]bool, len(e.Fields))
	)
	for _, f := range e.Fields {
		if validParam(f.Column.Name) {
			names[f] = f.Column.Name
			taken[f.Column.Name] = true
		}
	}
	for i, f := range e.Fields {
		if _, ok := names[f]; ok {
			continue
		}
		name := "p" + strconv.Itoa(i)
		for taken[name] {
			name += "_"
		}
		names[f], taken[name] = name, true
	}
	return names
}

func validParam(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
