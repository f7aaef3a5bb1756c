// Package load reads entity descriptors from Go packages and schema files.
package load

import (
	"fmt"

	"github.com/syssam/crudgen/schema/field"
)

// Schema describes one entity as read from a descriptor source.
type Schema struct {
	Name       string   `json:"name" yaml:"name"`
	Package    string   `json:"package,omitempty" yaml:"package,omitempty"`
	Table      string   `json:"table,omitempty" yaml:"table,omitempty"`
	Path       string   `json:"path,omitempty" yaml:"path,omitempty"`
	Compressed bool     `json:"compressed,omitempty" yaml:"compressed,omitempty"`
	Comment    string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	Fields     []*Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	Pos        string   `json:"-" yaml:"-"`
}

// Field describes one persisted field of a loaded schema.
type Field struct {
	Name    string         `json:"name" yaml:"name"`
	Info    field.TypeInfo `json:"type" yaml:"type"`
	ID      bool           `json:"id,omitempty" yaml:"id,omitempty"`
	Column  Column         `json:"column,omitempty" yaml:"column,omitempty"`
	Comment string         `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Column holds the storage metadata of a field.
type Column struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Length    int    `json:"length,omitempty" yaml:"length,omitempty"`
	Max       int    `json:"max,omitempty" yaml:"max,omitempty"`
	Precision *int   `json:"precision,omitempty" yaml:"precision,omitempty"`
	Nullable  bool   `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

// String returns a short description of the schema for log lines.
func (s *Schema) String() string {
	if s.Pos != "" {
		return fmt.Sprintf("%s (%s)", s.Name, s.Pos)
	}
	return s.Name
}

// FieldByName returns the field with the given name, if any.
func (s *Schema) FieldByName(name string) (*Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}
