package sql

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/load"
	"github.com/syssam/crudgen/dialect"
	"github.com/syssam/crudgen/schema/field"
)

func intp(n int) *int { return &n }

// testConfig returns a config generating below example.com/app/crud.
func testConfig(t *testing.T, opts ...gen.Option) *gen.Config {
	t.Helper()
	base := []gen.Option{
		gen.WithPackage("example.com/app/crud"),
		gen.WithTarget(t.TempDir()),
		gen.WithDialect(dialect.MySQL),
		gen.WithWorkers(1),
	}
	c, err := gen.NewConfig(append(base, opts...)...)
	require.NoError(t, err)
	return c
}

// widgetSchema describes a Widget with one field of every semantic type.
func widgetSchema() *load.Schema {
	return &load.Schema{
		Name: "Widget",
		Fields: []*load.Field{
			{Name: "id", Info: field.TypeInfo{Type: field.TypeInteger}, ID: true, Column: load.Column{Length: 11}},
			{Name: "name", Info: field.TypeInfo{Type: field.TypeString}, Column: load.Column{Length: 64}},
			{Name: "price", Info: field.TypeInfo{Type: field.TypeFloat}, Column: load.Column{Max: 10, Precision: intp(2)}},
			{Name: "active", Info: field.TypeInfo{Type: field.TypeBoolean}},
			{Name: "stock", Info: field.TypeInfo{Type: field.TypeLong}, Column: load.Column{Length: 20}},
			{Name: "created_at", Info: field.TypeInfo{Type: field.TypeDate}, Column: load.Column{Nullable: true}},
		},
	}
}

// newEntity extracts the entity of s, failing the test on error.
func newEntity(t *testing.T, c *gen.Config, s *load.Schema) *gen.Entity {
	t.Helper()
	e, err := gen.NewEntity(c, s)
	require.NoError(t, err)
	return e
}

// widget returns the extracted Widget entity.
func widget(t *testing.T, c *gen.Config) *gen.Entity {
	t.Helper()
	return newEntity(t, c, widgetSchema())
}

// requireParses fails the test if src is not a valid Go file.
func requireParses(t *testing.T, src []byte) {
	t.Helper()
	_, err := parser.ParseFile(token.NewFileSet(), "unit.go", src, parser.AllErrors)
	require.NoError(t, err, string(src))
}
