package gen

import (
	"bytes"
	"path"
	"path/filepath"

	"github.com/dave/jennifer/jen"
)

// Unit is one generated source file.
type Unit struct {
	// Package is the import path of the unit, e.g. "example.com/app/crud/service".
	Package string
	// Name is the name of the main type or table declared by the unit.
	Name string
	// File is the path of the unit relative to the output root.
	File string
	// Source holds the unformatted contents.
	Source []byte
}

// FullName returns the fully qualified name of the unit. Two units of one
// generation pass may never share a full name.
func (u *Unit) FullName() string {
	return u.Package + "." + u.Name
}

// Ref returns a reference to the type declared by the unit.
func (u *Unit) Ref() TypeRef {
	return TypeRef{PkgPath: u.Package, Name: u.Name}
}

// NewUnit returns a unit declared in the given layer of the output root.
func (c *Config) NewUnit(layer, name string, src []byte) *Unit {
	return &Unit{
		Package: c.LayerPackage(layer),
		Name:    name,
		File:    filepath.Join(layer, FileName(name)),
		Source:  src,
	}
}

// PackageName returns the package clause name of a unit.
func (u *Unit) PackageName() string {
	return path.Base(u.Package)
}

// LayerRef is the reference a unit holds to the unit of the layer below it.
type LayerRef struct {
	// Type is the referenced type.
	Type TypeRef
	// Field is the name of the struct field holding it.
	Field string
}

// RefTo returns a LayerRef to the type declared by u.
func RefTo(u *Unit) *LayerRef {
	return &LayerRef{Type: u.Ref(), Field: FieldName(u.Name)}
}

// NewFile returns a source file of the given layer package carrying the
// configured header comment.
func (c *Config) NewFile(layer string) *jen.File {
	f := jen.NewFilePath(c.LayerPackage(layer))
	if c.Header != "" {
		f.HeaderComment(c.Header)
	}
	return f
}

// Render renders f as the unit declaring name in the given layer.
func (c *Config) Render(layer, name string, f *jen.File) (*Unit, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, NewGenerationError(layer, FileName(name), "render source", err)
	}
	return c.NewUnit(layer, name, buf.Bytes()), nil
}
