// Package gen generates layered CRUD stacks from entity schemas.
//
// For every entity the generator emits one Go unit per layer:
//
//	controller   WidgetController  ->  service
//	service      WidgetService     ->  repository
//	repository   WidgetRepository  ->  dialect/sql.Executor
//	rowmapper    WidgetRowMapper   (result row -> *entity.Widget)
//	table        WidgetTable       (CREATE TABLE statement)
//
// Units of the same layer share a package below Config.Package, e.g.
// "example.com/app/crud/service". Entities loaded from schema files also
// get a struct in the entity package.
//
// # Pipeline
//
//	load.Schema  --NewEntity-->  Entity  --Backend-->  []*Unit  --Sink-->  files
//
// NewEntity validates a schema and fills in the naming conventions. The
// Backend interface is implemented by compiler/gen/sql. Sinks either write
// formatted files (FileSink) or keep units in memory (MemorySink).
//
// # Errors
//
// Errors of one entity never stop a batch. Generator.Generate records them
// in the Report, one Outcome per schema, and continues:
//
//	report, err := g.Generate(ctx, schemas...)
//	if err != nil {
//		return err // invalid config or cancelled context
//	}
//	for _, o := range report.Failed() {
//		log.Printf("%s: %s: %v", o.Entity, o.Kind(), o.Err)
//	}
package gen
