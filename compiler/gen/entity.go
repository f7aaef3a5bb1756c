package gen

import (
	"go/token"
	"strings"

	"github.com/syssam/crudgen/compiler/load"
	"github.com/syssam/crudgen/schema/field"
)

// TypeRef identifies a Go type by import path and name.
type TypeRef struct {
	PkgPath string
	Name    string
}

// String returns the fully qualified name of the type.
func (r TypeRef) String() string {
	if r.PkgPath == "" {
		return r.Name
	}
	return r.PkgPath + "." + r.Name
}

type (
	// Entity is the description of one entity that every writer consumes.
	// It is built once per generation pass by NewEntity and must not be
	// modified afterwards.
	Entity struct {
		// Name is the simple name of the entity, e.g. "Widget".
		Name string
		// Type is the Go struct that holds instances of the entity.
		Type TypeRef
		// Generated reports whether Type is emitted by crudgen itself,
		// because the descriptor did not name an existing Go type.
		Generated bool
		// Table is the database table of the entity.
		Table string
		// Path is the route path of the controller operations.
		Path string
		// Compressed requests a compressed row format where supported.
		Compressed bool
		// Comment is the table comment.
		Comment string
		// ID is the identifier field. It is also part of Fields.
		ID *Field
		// Fields holds all fields in declaration order.
		Fields []*Field
		// Pos is the position of the descriptor, for messages.
		Pos string
	}

	// Field describes one persisted field of an entity.
	Field struct {
		// Name is the declared name of the field.
		Name string
		// StructField is the Go struct field holding the value.
		StructField string
		// Type is the semantic type of the field.
		Type field.Type
		// Info holds the Go type of the struct field.
		Info field.TypeInfo
		// Column holds the storage metadata.
		Column Column
		// ID marks the identifier field.
		ID bool
		// Comment is the column comment.
		Comment string
	}

	// Column holds the storage metadata of a field.
	Column struct {
		Name      string
		Length    int
		Max       int
		Precision int
		Nullable  bool
	}
)

// NewEntity extracts the entity description of a loaded schema.
// It fails with MissingIdentifierError if no field is marked as identifier,
// and with MissingColumnMetadataError if a sized or decimal field lacks its
// size metadata.
func NewEntity(c *Config, s *load.Schema) (*Entity, error) {
	if s == nil {
		return nil, NewSchemaError("", "", "missing schema", nil)
	}
	if !token.IsIdentifier(s.Name) || !token.IsExported(s.Name) {
		return nil, NewSchemaError(s.Name, "", "entity name must be an exported Go identifier", nil)
	}
	e := &Entity{
		Name:       s.Name,
		Table:      s.Table,
		Path:       s.Path,
		Compressed: s.Compressed,
		Comment:    s.Comment,
		Pos:        s.Pos,
	}
	if e.Table == "" {
		e.Table = TableName(s.Name)
	}
	if e.Path == "" {
		e.Path = PathName(s.Name)
	}
	if !strings.HasPrefix(e.Path, "/") {
		e.Path = "/" + e.Path
	}
	e.Path = strings.TrimSuffix(e.Path, "/")
	if s.Package != "" {
		e.Type = TypeRef{PkgPath: s.Package, Name: s.Name}
	} else {
		e.Generated = true
		e.Type = TypeRef{PkgPath: c.LayerPackage(LayerEntity), Name: s.Name}
	}
	var (
		ids     []string
		names   = make(map[string]bool, len(s.Fields))
		columns = make(map[string]bool, len(s.Fields))
	)
	for _, sf := range s.Fields {
		f, err := e.newField(sf)
		if err != nil {
			return nil, err
		}
		if names[f.StructField] {
			return nil, NewSchemaError(e.Name, f.Name, "duplicate field", nil)
		}
		if columns[f.Column.Name] {
			return nil, NewSchemaError(e.Name, f.Name, "duplicate column "+f.Column.Name, nil)
		}
		names[f.StructField], columns[f.Column.Name] = true, true
		if f.ID {
			ids = append(ids, f.Name)
			e.ID = f
		}
		e.Fields = append(e.Fields, f)
	}
	switch {
	case len(ids) == 0:
		return nil, &MissingIdentifierError{Type: e.Name}
	case len(ids) > 1:
		return nil, &AmbiguousIdentifierError{Type: e.Name, Fields: ids}
	case e.ID.Column.Nullable:
		return nil, NewSchemaError(e.Name, e.ID.Name, "identifier cannot be nullable", nil)
	}
	return e, nil
}

func (e *Entity) newField(sf *load.Field) (*Field, error) {
	name := strings.TrimSpace(sf.Name)
	if name == "" {
		return nil, NewSchemaError(e.Name, "", "missing field name", nil)
	}
	f := &Field{
		Name:        name,
		StructField: name,
		Type:        sf.Info.Type,
		Info:        sf.Info,
		ID:          sf.ID,
		Comment:     sf.Comment,
		Column: Column{
			Name:     sf.Column.Name,
			Length:   sf.Column.Length,
			Max:      sf.Column.Max,
			Nullable: sf.Column.Nullable,
		},
	}
	// Fields of generated structs are exported versions of the declared names.
	if e.Generated {
		f.StructField = pascal(name)
	}
	if !token.IsIdentifier(f.StructField) || !token.IsExported(f.StructField) {
		return nil, NewSchemaError(e.Name, name, "field must map to an exported Go identifier", nil)
	}
	if f.Column.Name == "" {
		f.Column.Name = snake(name)
	}
	switch {
	case f.Type == field.TypeInvalid:
		return nil, NewSchemaError(e.Name, name, "missing field type", nil)
	case !f.Type.Valid() && f.Info.Ident == "":
		return nil, NewSchemaError(e.Name, name, "missing Go type of field", nil)
	}
	switch {
	case f.Type.Sized() && f.Column.Length <= 0:
		return nil, e.missing(f, "length")
	case f.Type.Decimal() && f.Column.Max <= 0:
		return nil, e.missing(f, "max")
	case f.Type.Decimal() && sf.Column.Precision == nil:
		return nil, e.missing(f, "precision")
	case f.Type.Decimal():
		f.Column.Precision = *sf.Column.Precision
		if f.Column.Precision > f.Column.Max {
			return nil, NewSchemaError(e.Name, name, "precision exceeds max digits", nil)
		}
	}
	return f, nil
}

func (e *Entity) missing(f *Field, metadata string) *MissingColumnMetadataError {
	return &MissingColumnMetadataError{
		Type:      e.Name,
		Field:     f.Name,
		FieldType: f.Type.String(),
		Metadata:  metadata,
	}
}

// MutableFields returns the fields written by inserts and updates, that is
// all fields except the identifier.
func (e *Entity) MutableFields() []*Field {
	fields := make([]*Field, 0, len(e.Fields))
	for _, f := range e.Fields {
		if !f.ID {
			fields = append(fields, f)
		}
	}
	return fields
}

// String returns the name of the entity.
func (e *Entity) String() string {
	return e.Name
}

// VarName returns the name of a Go variable holding the field value.
func (f *Field) VarName() string {
	name := camel(f.Name)
	if token.IsKeyword(name) {
		// Keywords like "type" or "func" cannot be used as variable names.
		return "_" + name
	}
	return name
}

// JSONName returns the JSON key of the field in generated entity structs.
func (f *Field) JSONName() string {
	return camel(f.Name)
}
