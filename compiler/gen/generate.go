package gen

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/crudgen/compiler/load"
)

// Generator runs generation passes over batches of entity schemas.
//
// Example:
//
//	cfg, err := gen.NewConfig(gen.WithPackage("example.com/app/crud"), gen.WithTarget("./crud"))
//	if err != nil {
//		return err
//	}
//	g := gen.NewGenerator(cfg, sql.NewBackend(cfg), gen.NewFileSink(cfg.Target))
//	report, err := g.Generate(ctx, schemas...)
type Generator struct {
	cfg     *Config
	backend Backend
	sink    Sink
}

// NewGenerator creates a generator writing units produced by b to s.
func NewGenerator(c *Config, b Backend, s Sink) *Generator {
	return &Generator{cfg: c, backend: b, sink: s}
}

// Generate processes the given schemas, in parallel up to the configured
// number of workers. A failing entity does not stop the batch: its error is
// recorded in the report and the remaining entities are still generated.
// The returned error is non-nil only for an invalid configuration or a
// cancelled context.
func (g *Generator) Generate(ctx context.Context, schemas ...*load.Schema) (*Report, error) {
	switch {
	case g.cfg == nil:
		return nil, NewConfigError("Config", nil, "missing generator config")
	case g.backend == nil:
		return nil, NewConfigError("Backend", nil, "missing generator back end")
	case g.sink == nil:
		return nil, NewConfigError("Sink", nil, "missing generator sink")
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	var (
		report = &Report{RunID: uuid.NewString(), Outcomes: make([]*Outcome, len(schemas))}
		log    = g.cfg.Logger.With(zap.String("run", report.RunID), zap.String("dialect", g.cfg.Dialect))
		reg    = newRegistry()
		eg     errgroup.Group
	)
	eg.SetLimit(g.cfg.Workers)
	for i, s := range schemas {
		eg.Go(func() error {
			report.Outcomes[i] = g.generate(ctx, log, reg, s)
			return nil
		})
	}
	_ = eg.Wait()
	failed := len(report.Failed())
	log.Info("generation finished",
		zap.Int("entities", len(schemas)),
		zap.Int("failed", failed),
	)
	return report, ctx.Err()
}

// generate generates all units of one entity.
func (g *Generator) generate(ctx context.Context, log *zap.Logger, reg *registry, s *load.Schema) *Outcome {
	out := &Outcome{}
	if s != nil {
		out.Entity = s.Name
	}
	log = log.With(zap.String("entity", out.Entity))
	fail := func(err error) *Outcome {
		out.Err = err
		log.Error("entity failed", zap.String("kind", out.Kind()), zap.Error(err))
		return out
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	e, err := NewEntity(g.cfg, s)
	if err != nil {
		return fail(err)
	}
	units, err := g.write(e)
	if err != nil {
		return fail(err)
	}
	if err := reg.register(e.Name, units); err != nil {
		return fail(err)
	}
	for _, u := range units {
		if err := g.sink.Write(ctx, u); err != nil {
			return fail(&EmissionError{Unit: u.FullName(), Path: u.File, Cause: err})
		}
		log.Debug("unit written", zap.String("unit", u.FullName()), zap.String("file", u.File))
		out.Units = append(out.Units, u.FullName())
	}
	log.Info("entity generated", zap.Int("units", len(units)))
	return out
}

// write runs the writers of an entity in dependency order. The repository
// comes first since the service refers to it, and the controller to the
// service.
func (g *Generator) write(e *Entity) ([]*Unit, error) {
	var units []*Unit
	if e.Generated {
		w, ok := g.backend.(EntityWriter)
		if !ok {
			return nil, NewGenerationError(LayerEntity, FileName(e.Name), "back end cannot generate entity structs", nil)
		}
		u, err := w.WriteEntity(e)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	repo, err := g.backend.WriteRepository(e)
	if err != nil {
		return nil, err
	}
	svc, err := g.backend.WriteService(e, RefTo(repo))
	if err != nil {
		return nil, err
	}
	ctrl, err := g.backend.WriteController(e, RefTo(svc))
	if err != nil {
		return nil, err
	}
	mapper, err := g.backend.WriteRowMapper(e)
	if err != nil {
		return nil, err
	}
	table, err := g.backend.WriteTable(e)
	if err != nil {
		return nil, err
	}
	return append(units, repo, svc, ctrl, mapper, table), nil
}

// registry records the full names and files of all units of a generation
// pass.
type registry struct {
	mu    sync.Mutex
	units map[string]string // full name to entity name.
	files map[string]string // file to entity name.
}

func newRegistry() *registry {
	return &registry{units: make(map[string]string), files: make(map[string]string)}
}

// register claims the names and files of all units of an entity, or none
// of them. Distinct names may map to the same file, e.g. HTTPWidget and
// HttpWidget, so files are claimed separately.
func (r *registry) register(entity string, units []*Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var (
		names = make(map[string]bool, len(units))
		files = make(map[string]bool, len(units))
	)
	for _, u := range units {
		name, file := u.FullName(), filepath.ToSlash(filepath.Clean(u.File))
		if owner, ok := r.units[name]; ok {
			return &DuplicateUnitError{Unit: name, Entity: owner}
		}
		if owner, ok := r.files[file]; ok {
			return &DuplicateUnitError{Unit: name, File: file, Entity: owner}
		}
		if names[name] {
			return &DuplicateUnitError{Unit: name, Entity: entity}
		}
		if files[file] {
			return &DuplicateUnitError{Unit: name, File: file, Entity: entity}
		}
		names[name], files[file] = true, true
	}
	for name := range names {
		r.units[name] = entity
	}
	for file := range files {
		r.files[file] = entity
	}
	return nil
}
