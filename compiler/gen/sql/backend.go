package sql

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/load"
)

// Generate generates the CRUD stack of the given schemas below c.Target.
// This is the recommended entry point for code generation.
//
// Example:
//
//	cfg, err := gen.NewConfig(gen.WithPackage("example.com/app/crud"), gen.WithTarget("./crud"))
//	...
//	report, err := sql.Generate(ctx, cfg, schemas...)
func Generate(ctx context.Context, c *gen.Config, schemas ...*load.Schema) (*gen.Report, error) {
	if c == nil {
		return nil, gen.NewConfigError("Config", nil, "missing generator config")
	}
	return gen.NewGenerator(c, NewBackend(c), gen.NewFileSink(c.Target)).Generate(ctx, schemas...)
}

// Backend implements gen.Backend for SQL databases. Statements and DDL
// follow the configured dialect, controllers the configured framework.
type Backend struct {
	cfg *gen.Config
}

// NewBackend creates a new SQL back end.
func NewBackend(c *gen.Config) *Backend {
	return &Backend{cfg: c}
}

var (
	_ gen.Backend      = (*Backend)(nil)
	_ gen.EntityWriter = (*Backend)(nil)
)

// WriteEntity writes the entity struct ({entity}.go).
func (b *Backend) WriteEntity(e *gen.Entity) (*gen.Unit, error) {
	return b.render(gen.LayerEntity, e.Name)(genEntity(b.cfg, e))
}

// WriteRepository writes the repository ({entity}_repository.go).
func (b *Backend) WriteRepository(e *gen.Entity) (*gen.Unit, error) {
	return b.render(gen.LayerRepository, gen.RepositoryName(e.Name))(genRepository(b.cfg, e))
}

// WriteService writes the service ({entity}_service.go).
func (b *Backend) WriteService(e *gen.Entity, below *gen.LayerRef) (*gen.Unit, error) {
	return b.render(gen.LayerService, gen.ServiceName(e.Name))(genService(b.cfg, e, below))
}

// WriteController writes the controller ({entity}_controller.go).
func (b *Backend) WriteController(e *gen.Entity, below *gen.LayerRef) (*gen.Unit, error) {
	return b.render(gen.LayerController, gen.ControllerName(e.Name))(genController(b.cfg, e, below))
}

// WriteRowMapper writes the row mapper ({entity}_row_mapper.go).
func (b *Backend) WriteRowMapper(e *gen.Entity) (*gen.Unit, error) {
	return b.render(gen.LayerRowMapper, gen.RowMapperName(e.Name))(genRowMapper(b.cfg, e))
}

// WriteTable writes the table DDL ({entity}_table.go).
func (b *Backend) WriteTable(e *gen.Entity) (*gen.Unit, error) {
	return b.render(gen.LayerTable, gen.TableTypeName(e.Name))(genTable(b.cfg, e))
}

// render returns a function rendering the result of a file generator.
func (b *Backend) render(layer, name string) func(*jen.File, error) (*gen.Unit, error) {
	return func(f *jen.File, err error) (*gen.Unit, error) {
		if err != nil {
			return nil, err
		}
		return b.cfg.Render(layer, name, f)
	}
}
