package gen

// LayerWriter writes the units of the layered stack of an entity. Each
// method is called once per entity and generation pass. Service and
// controller writers receive the unit directly beneath them.
type LayerWriter interface {
	// WriteRepository writes the repository unit ({name}_repository.go).
	WriteRepository(e *Entity) (*Unit, error)
	// WriteService writes the service unit, delegating to the repository.
	WriteService(e *Entity, below *LayerRef) (*Unit, error)
	// WriteController writes the controller unit, delegating to the service.
	WriteController(e *Entity, below *LayerRef) (*Unit, error)
}

// MapperWriter writes the units that do not depend on any other layer.
type MapperWriter interface {
	// WriteRowMapper writes the row mapper unit ({name}_row_mapper.go).
	WriteRowMapper(e *Entity) (*Unit, error)
	// WriteTable writes the table unit holding the DDL ({name}_table.go).
	WriteTable(e *Entity) (*Unit, error)
}

// Backend is the full set of writers needed to generate an entity.
type Backend interface {
	LayerWriter
	MapperWriter
}

// EntityWriter is implemented by back ends that can emit the entity struct
// itself, for entities described in schema files instead of Go source.
type EntityWriter interface {
	WriteEntity(e *Entity) (*Unit, error)
}
