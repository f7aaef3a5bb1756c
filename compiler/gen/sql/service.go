package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/crudgen/compiler/gen"
)

// genService generates the service file ({entity}_service.go). Each method
// delegates unchanged to the repository.
func genService(c *gen.Config, e *gen.Entity, below *gen.LayerRef) (*jen.File, error) {
	name := gen.ServiceName(e.Name)
	if below == nil {
		return nil, gen.NewGenerationError(gen.LayerService, gen.FileName(name), "missing repository reference", nil)
	}
	f := c.NewFile(gen.LayerService)
	genDelegate(f, e, name, "s", "instance", below)
	return f, nil
}

// genDelegate generates a struct holding the layer below and one method per
// operation calling into it.
func genDelegate(f *jen.File, e *gen.Entity, name, recv, body string, below *gen.LayerRef) {
	f.Commentf("%s handles %s instances using %s.", name, e.Name, below.Type.Name)
	f.Type().Id(name).Struct(
		jen.Id(below.Field).Op("*").Add(layerType(below)),
	)

	f.Commentf("New%s returns a %s calling into %s.", name, name, below.Field)
	f.Func().Id("New"+name).Params(
		jen.Id(below.Field).Op("*").Add(layerType(below)),
	).Op("*").Id(name).Block(
		jen.Return(jen.Op("&").Id(name).Values(jen.Dict{
			jen.Id(below.Field): jen.Id(below.Field),
		})),
	)

	for _, op := range gen.Operations(e) {
		f.Commentf("%s calls %s.%s.", op.Method, below.Type.Name, op.Method)
		f.Func().Params(jen.Id(recv).Op("*").Id(name)).Id(op.Method).Params(
			opParams(e, op, body)...,
		).Add(opResult(e, op)).Block(
			jen.Return(jen.Id(recv).Dot(below.Field).Dot(op.Method).Call(opArgs(op, body)...)),
		)
	}
}
