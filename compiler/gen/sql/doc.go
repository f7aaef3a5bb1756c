// Package sql implements the SQL back end of the CRUD generator.
//
// Usage:
//
//	import (
//	    "github.com/syssam/crudgen/compiler/gen"
//	    "github.com/syssam/crudgen/compiler/gen/sql"
//	)
//
//	g := gen.NewGenerator(cfg, sql.NewBackend(cfg), gen.NewFileSink(cfg.Target))
//	report, err := g.Generate(ctx, schemas...)
//
// Generated code structure:
//
//	{target}/
//	├── entity/
//	│   └── {entity}.go             # Entity struct (schema files only)
//	├── repository/
//	│   └── {entity}_repository.go  # Statements and CRUD methods
//	├── service/
//	│   └── {entity}_service.go     # Passthrough to the repository
//	├── controller/
//	│   └── {entity}_controller.go  # Operations, routes and handlers
//	├── rowmapper/
//	│   └── {entity}_row_mapper.go  # Result row to entity
//	└── table/
//	    └── {entity}_table.go       # CREATE TABLE statement
//
// Repositories depend on dialect/sql.Executor, which *dialect/sql.Driver
// implements.
package sql
