package sql

import (
	"fmt"
	"strings"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/dialect"
	"github.com/syssam/crudgen/schema/field"
)

// CreateStatement returns the CREATE TABLE statement of e in dialect d.
// Columns follow the field declaration order and end with the primary key
// clause of the identifier column.
func CreateStatement(d string, e *gen.Entity) (string, error) {
	if err := dialect.Check(d); err != nil {
		return "", gen.NewConfigError("Dialect", d, err.Error())
	}
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(dialect.Quote(d, e.Table))
	b.WriteString(" (")
	for _, f := range e.Fields {
		def, err := columnDef(d, e, f)
		if err != nil {
			return "", err
		}
		b.WriteString(def)
		b.WriteString(", ")
	}
	b.WriteString("PRIMARY KEY (")
	b.WriteString(dialect.Quote(d, e.ID.Column.Name))
	b.WriteString("))")
	if d == dialect.MySQL {
		if e.Comment != "" {
			b.WriteString(" COMMENT=")
			b.WriteString(literal(e.Comment))
		}
		if e.Compressed {
			b.WriteString(" ROW_FORMAT=COMPRESSED")
		}
	}
	return b.String(), nil
}

// columnDef returns the column clause of f.
func columnDef(d string, e *gen.Entity, f *gen.Field) (string, error) {
	typ, err := columnType(d, f)
	if err != nil {
		return "", gen.NewUnsupportedFieldTypeError(gen.LayerTable, e, f)
	}
	parts := []string{dialect.Quote(d, f.Column.Name), typ}
	switch {
	case f.ID && autoIncrement(e) && d == dialect.SQLite:
		// INTEGER primary keys are aliases of the rowid and filled in on insert.
	case f.ID && autoIncrement(e) && d == dialect.Postgres:
		parts = append(parts, "GENERATED BY DEFAULT AS IDENTITY")
	case f.ID && autoIncrement(e):
		parts = append(parts, "NOT NULL", "AUTO_INCREMENT")
	case !f.Column.Nullable:
		parts = append(parts, "NOT NULL")
	}
	if f.Comment != "" && d == dialect.MySQL {
		parts = append(parts, "COMMENT", literal(f.Comment))
	}
	return strings.Join(parts, " "), nil
}

// columnType maps the semantic type of f to a column type.
func columnType(d string, f *gen.Field) (string, error) {
	c := f.Column
	switch d {
	case dialect.Postgres:
		switch f.Type {
		case field.TypeInteger:
			return "INTEGER", nil
		case field.TypeLong:
			return "BIGINT", nil
		case field.TypeFloat:
			return fmt.Sprintf("NUMERIC(%d,%d)", c.Max, c.Precision), nil
		case field.TypeString:
			return fmt.Sprintf("VARCHAR(%d)", c.Length), nil
		case field.TypeBoolean:
			return "BOOLEAN", nil
		case field.TypeDate:
			return "DATE", nil
		}
	case dialect.SQLite:
		switch f.Type {
		case field.TypeInteger, field.TypeLong:
			return "INTEGER", nil
		case field.TypeFloat:
			return fmt.Sprintf("DECIMAL(%d,%d)", c.Max, c.Precision), nil
		case field.TypeString:
			return fmt.Sprintf("VARCHAR(%d)", c.Length), nil
		case field.TypeBoolean:
			return "BOOLEAN", nil
		case field.TypeDate:
			return "DATE", nil
		}
	default:
		switch f.Type {
		case field.TypeInteger:
			return fmt.Sprintf("INT(%d)", c.Length), nil
		case field.TypeLong:
			return fmt.Sprintf("BIGINT(%d)", c.Length), nil
		case field.TypeFloat:
			return fmt.Sprintf("DECIMAL(%d,%d)", c.Max, c.Precision), nil
		case field.TypeString:
			return fmt.Sprintf("VARCHAR(%d)", c.Length), nil
		case field.TypeBoolean:
			return "TINYINT(1)", nil
		case field.TypeDate:
			return "DATE", nil
		}
	}
	return "", fmt.Errorf("no %s column type for %s", d, f.Type)
}

// literal returns s as a SQL string literal.
func literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
