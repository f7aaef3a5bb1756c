package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/load"
	"github.com/syssam/crudgen/schema/field"
)

func TestGenTable(t *testing.T) {
	c := testConfig(t)
	f, err := genTable(c, widget(t, c))
	require.NoError(t, err)

	code := f.GoString()
	assert.Contains(t, code, "package table")
	assert.Contains(t, code, `WidgetTableName       = "widget"`)
	assert.Contains(t, code, "WidgetCreateStatement = \"CREATE TABLE `widget` (`id` INT(11) NOT NULL AUTO_INCREMENT")
	assert.Contains(t, code, "func CreateWidgetTable(ctx context.Context, creator *sql.TableCreator) (bool, error) {")
	assert.Contains(t, code, "return creator.CreateTableIfNotExists(ctx, WidgetTableName, WidgetCreateStatement)")
	requireParses(t, []byte(code))
}

func TestGenTableUnsupportedType(t *testing.T) {
	c := testConfig(t)
	s := widgetSchema()
	s.Fields = append(s.Fields, &load.Field{Name: "ref", Info: field.TypeInfo{Type: field.TypeOther, Ident: "uuid"}})
	_, err := genTable(c, newEntity(t, c, s))
	assert.True(t, gen.IsUnsupportedFieldTypeError(err))
}
