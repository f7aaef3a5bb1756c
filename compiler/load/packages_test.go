package load

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/crudgen/schema/field"
)

func TestLoadPackages(t *testing.T) {
	schemas, err := LoadPackages(context.Background(), "./testdata/entity")
	require.NoError(t, err)
	require.Len(t, schemas, 2, "only marked structs are loaded")

	w := schemas[0]
	assert.Equal(t, "Widget", w.Name)
	assert.Equal(t, "github.com/syssam/crudgen/compiler/load/testdata/entity", w.Package)
	assert.Equal(t, "/widgets", w.Path)
	assert.True(t, w.Compressed)
	assert.Contains(t, w.Pos, "widget.go")

	names := make([]string, len(w.Fields))
	for i, f := range w.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"ID", "Name", "Price", "Active", "Status", "Created"}, names, "declaration order, skipped and unexported fields omitted")

	id := w.Fields[0]
	assert.True(t, id.ID)
	assert.Equal(t, field.TypeInteger, id.Info.Type)
	assert.Equal(t, "int32", id.Info.Ident)
	assert.Equal(t, 11, id.Column.Length)

	assert.Equal(t, "display name", w.Fields[1].Comment)
	assert.True(t, w.Fields[1].Info.Natural())

	price := w.Fields[2]
	assert.Equal(t, field.TypeFloat, price.Info.Type)
	assert.Equal(t, 10, price.Column.Max)
	require.NotNil(t, price.Column.Precision)
	assert.Equal(t, 2, *price.Column.Precision)

	assert.Equal(t, "is_active", w.Fields[3].Column.Name, "db tag names the column")

	status := w.Fields[4]
	assert.Equal(t, field.TypeString, status.Info.Type)
	assert.Equal(t, "entity.Status", status.Info.Ident)
	assert.Equal(t, w.Package, status.Info.PkgPath)

	created := w.Fields[5]
	assert.Equal(t, field.TypeDate, created.Info.Type)
	assert.Equal(t, "created_at", created.Column.Name)
	assert.True(t, created.Column.Nullable)

	p := schemas[1]
	assert.Equal(t, "Part", p.Name)
	assert.Equal(t, "parts", p.Table)
	require.Len(t, p.Fields, 2)
	assert.Equal(t, field.TypeLong, p.Fields[0].Info.Type)
	assert.Equal(t, field.TypeOther, p.Fields[1].Info.Type)
	assert.Equal(t, "[]string", p.Fields[1].Info.Ident)
}

func TestLoadPackages_InvalidTag(t *testing.T) {
	_, err := LoadPackages(context.Background(), "./testdata/invalid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field ID")
	assert.Contains(t, err.Error(), `"big"`)
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag     string
		want    Field
		wantErr string
	}{
		{tag: "", want: Field{}},
		{tag: "id,length=11", want: Field{ID: true, Column: Column{Length: 11}}},
		{tag: "column=full_name, nullable", want: Field{Column: Column{Name: "full_name", Nullable: true}}},
		{tag: "comment=the name", want: Field{Comment: "the name"}},
		{tag: "length", wantErr: "requires a value"},
		{tag: "length=-1", wantErr: "invalid size"},
		{tag: "size=3", wantErr: "unknown tag option"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			var f Field
			err := parseTag(&f, tt.tag)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}

	var f Field
	require.NoError(t, parseTag(&f, "max=10,precision=0"))
	assert.Equal(t, 10, f.Column.Max)
	require.NotNil(t, f.Column.Precision)
	assert.Zero(t, *f.Column.Precision)
}

func TestDirective(t *testing.T) {
	s := &Schema{}
	require.NoError(t, s.applyDirective([]string{"table=widgets", "path=/w", "compressed"}))
	assert.Equal(t, "widgets", s.Table)
	assert.Equal(t, "/w", s.Path)
	assert.True(t, s.Compressed)
	assert.Error(t, s.applyDirective([]string{"cache"}))
}
