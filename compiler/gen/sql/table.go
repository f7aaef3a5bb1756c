package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/crudgen/compiler/gen"
)

// genTable generates the table file ({entity}_table.go) holding the table
// name, its DDL and a function creating it.
func genTable(c *gen.Config, e *gen.Entity) (*jen.File, error) {
	stmt, err := CreateStatement(c.Dialect, e)
	if err != nil {
		return nil, err
	}
	f := c.NewFile(gen.LayerTable)
	f.Commentf("Table %s of %s instances.", e.Table, e.Name)
	f.Const().Defs(
		jen.Id(e.Name+"TableName").Op("=").Lit(e.Table),
		jen.Id(e.Name+"CreateStatement").Op("=").Lit(stmt),
	)

	fn := "Create" + e.Name + "Table"
	f.Commentf("%s creates the %s table unless it exists, and reports whether it was created.", fn, e.Table)
	f.Func().Id(fn).Params(
		ctxParam(),
		jen.Id("creator").Op("*").Qual(sqlPkg, "TableCreator"),
	).Add(boolResult()).Block(
		jen.Return(jen.Id("creator").Dot("CreateTableIfNotExists").Call(
			jen.Id("ctx"), jen.Id(e.Name+"TableName"), jen.Id(e.Name+"CreateStatement"),
		)),
	)
	return f, nil
}
