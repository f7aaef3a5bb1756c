package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/crudgen/compiler/gen"
)

// genEntity generates the entity struct file ({entity}.go) for entities
// that are not declared in Go source.
func genEntity(c *gen.Config, e *gen.Entity) (*jen.File, error) {
	for _, fd := range e.Fields {
		if !fd.Type.Valid() {
			return nil, gen.NewUnsupportedFieldTypeError(gen.LayerEntity, e, fd)
		}
	}
	f := c.NewFile(gen.LayerEntity)
	f.Commentf("%s is the model entity of the %s table.", e.Name, e.Table)
	f.Type().Id(e.Name).StructFunc(func(g *jen.Group) {
		for _, fd := range e.Fields {
			if fd.Comment != "" {
				g.Comment(fd.Comment)
			}
			g.Id(fd.StructField).Add(goType(fd)).Tag(map[string]string{"json": fd.JSONName()})
		}
	})
	return f, nil
}
