package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/crudgen/compiler/gen"
)

// genRepository generates the repository file ({entity}_repository.go).
// Includes: statement constants, repository struct, CRUD methods.
func genRepository(c *gen.Config, e *gen.Entity) (*jen.File, error) {
	var (
		f     = c.NewFile(gen.LayerRepository)
		name  = gen.RepositoryName(e.Name)
		stmts = NewStatements(c.Dialect, e)
	)
	f.Commentf("SQL statements of the %s table.", e.Table)
	f.Const().Defs(
		jen.Id(e.Name+"Insert").Op("=").Lit(stmts.Insert),
		jen.Id(e.Name+"Select").Op("=").Lit(stmts.Select),
		jen.Id(e.Name+"Update").Op("=").Lit(stmts.Update),
		jen.Id(e.Name+"Delete").Op("=").Lit(stmts.Delete),
	)

	f.Commentf("%s persists %s instances.", name, e.Name)
	f.Type().Id(name).Struct(
		jen.Id("executor").Qual(sqlPkg, "Executor"),
	)

	f.Commentf("New%s returns a %s running statements on executor.", name, name)
	f.Func().Id("New"+name).Params(
		jen.Id("executor").Qual(sqlPkg, "Executor"),
	).Op("*").Id(name).Block(
		jen.Return(jen.Op("&").Id(name).Values(jen.Dict{
			jen.Id("executor"): jen.Id("executor"),
		})),
	)

	for _, op := range gen.Operations(e) {
		switch op.Name {
		case gen.OpCreate:
			f.Comment("Create inserts instance and reports whether a row was written.")
			genExecMethod(f, e, name, op, e.Name+"Insert", params(e, insertFields(e), false))
		case gen.OpGet:
			genGetMethod(c, f, e, name, op)
		case gen.OpUpdate:
			f.Comment("Update writes instance to the row with the given identifier.")
			genExecMethod(f, e, name, op, e.Name+"Update", params(e, e.MutableFields(), true))
		case gen.OpDelete:
			f.Comment("Delete removes the row with the given identifier.")
			genExecMethod(f, e, name, op, e.Name+"Delete", params(e, nil, true))
		}
	}
	return f, nil
}

// genExecMethod generates a mutation returning whether any row was affected.
// Zero affected rows are not an error.
func genExecMethod(f *jen.File, e *gen.Entity, name string, op *gen.Operation, stmt string, params jen.Code) {
	f.Func().Params(jen.Id("r").Op("*").Id(name)).Id(op.Method).Params(
		opParams(e, op, "instance")...,
	).Add(boolResult()).Block(
		jen.List(jen.Id("affected"), jen.Err()).Op(":=").Id("r").Dot("executor").Dot("Exec").Call(
			jen.Id("ctx"), jen.Id(stmt), params,
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.False(), jen.Err()),
		),
		jen.Return(jen.Id("affected").Op(">").Lit(0), jen.Nil()),
	)
}

// genGetMethod generates the method reading all rows with the row mapper.
func genGetMethod(c *gen.Config, f *jen.File, e *gen.Entity, name string, op *gen.Operation) {
	mapper := jen.Qual(c.LayerPackage(gen.LayerRowMapper), gen.RowMapperName(e.Name))
	f.Commentf("Get returns all %s instances.", e.Name)
	f.Func().Params(jen.Id("r").Op("*").Id(name)).Id(op.Method).Params(
		opParams(e, op, "instance")...,
	).Add(listResult(e)).Block(
		jen.Var().Id("instances").Index().Op("*").Add(entityType(e)),
		jen.Id("mapper").Op(":=").Add(mapper).Values(),
		jen.Err().Op(":=").Id("r").Dot("executor").Dot("Query").Call(
			jen.Id("ctx"), jen.Id(e.Name+"Select"), jen.Nil(),
			jen.Func().Params(jen.Id("rs").Op("*").Qual(sqlPkg, "RowReader")).Error().Block(
				jen.List(jen.Id("instance"), jen.Err()).Op(":=").Id("mapper").Dot("MapRow").Call(jen.Id("rs")),
				jen.If(jen.Err().Op("!=").Nil()).Block(
					jen.Return(jen.Err()),
				),
				jen.Id("instances").Op("=").Append(jen.Id("instances"), jen.Id("instance")),
				jen.Return(jen.Nil()),
			),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.Return(jen.Id("instances"), jen.Nil()),
	)
}

// params returns the parameter map of a statement. Keys follow the
// declaration order of fields, with the identifier argument last.
func params(e *gen.Entity, fields []*gen.Field, id bool) jen.Code {
	return jen.Map(jen.String()).Interface().ValuesFunc(func(g *jen.Group) {
		for _, f := range fields {
			g.Lit(paramName(e, f)).Op(":").Id("instance").Dot(f.StructField)
		}
		if id {
			g.Lit(paramName(e, e.ID)).Op(":").Id(gen.IDParam)
		}
	})
}
