package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/crudgen/compiler/gen"
)

// genRowMapper generates the row mapper file ({entity}_row_mapper.go).
// Every field is read with the accessor of its semantic type, in
// declaration order.
func genRowMapper(c *gen.Config, e *gen.Entity) (*jen.File, error) {
	assign := make([]jen.Code, 0, len(e.Fields))
	for _, fd := range e.Fields {
		accessor, ok := accessors[fd.Type]
		if !ok {
			return nil, gen.NewUnsupportedFieldTypeError(gen.LayerRowMapper, e, fd)
		}
		read := jen.Id("rs").Dot(accessor).Call(jen.Lit(fd.Column.Name))
		assign = append(assign, jen.Id("instance").Dot(fd.StructField).Op("=").Add(convert(fd, read)))
	}
	var (
		f    = c.NewFile(gen.LayerRowMapper)
		name = gen.RowMapperName(e.Name)
	)
	f.Commentf("%s maps rows of the %s table to %s instances.", name, e.Table, e.Name)
	f.Type().Id(name).Struct()

	f.Comment("MapRow reads the current row of rs into a new instance.")
	f.Func().Params(jen.Id(name)).Id("MapRow").Params(
		jen.Id("rs").Op("*").Qual(sqlPkg, "RowReader"),
	).Params(jen.Op("*").Add(entityType(e)), jen.Error()).BlockFunc(func(g *jen.Group) {
		g.Id("instance").Op(":=").Op("&").Add(entityType(e)).Values()
		for _, a := range assign {
			g.Add(a)
		}
		g.If(jen.Err().Op(":=").Id("rs").Dot("Err").Call(), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Err()),
		)
		g.Return(jen.Id("instance"), jen.Nil())
	})
	return f, nil
}
