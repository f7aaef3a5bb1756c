package load

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"

	"github.com/syssam/crudgen/schema/field"
)

// Directive marks a Go struct as an entity.
const Directive = "crudgen:entity"

// Config holds the configuration for loading Go packages.
type Config struct {
	// Dir is the directory to run the build tool in.
	// The current directory is used if empty.
	Dir string
	// BuildFlags are passed to the build tool, e.g. "-tags=integration".
	BuildFlags []string
}

// LoadPackages loads the packages matching patterns and returns one schema
// per struct type marked with the entity directive, in file and declaration order.
func (c *Config) LoadPackages(ctx context.Context, patterns ...string) ([]*Schema, error) {
	cfg := &packages.Config{
		Context:    ctx,
		Dir:        c.Dir,
		BuildFlags: c.BuildFlags,
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrapf(err, "load: packages %v", patterns)
	}
	var schemas []*Schema
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, errors.Wrapf(pkg.Errors[0], "load: package %s", pkg.PkgPath)
		}
		for _, file := range pkg.Syntax {
			found, err := fileSchemas(pkg, file)
			if err != nil {
				return nil, err
			}
			schemas = append(schemas, found...)
		}
	}
	return schemas, nil
}

// LoadPackages loads entity schemas from the packages matching patterns
// using the default configuration.
func LoadPackages(ctx context.Context, patterns ...string) ([]*Schema, error) {
	return (&Config{}).LoadPackages(ctx, patterns...)
}

func fileSchemas(pkg *packages.Package, file *ast.File) ([]*Schema, error) {
	var schemas []*Schema
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			opts, ok := directive(doc)
			if !ok {
				continue
			}
			pos := pkg.Fset.Position(ts.Pos()).String()
			obj := pkg.TypesInfo.Defs[ts.Name]
			if obj == nil {
				return nil, errors.Errorf("load: %s: no type information for %s", pos, ts.Name.Name)
			}
			st, ok := obj.Type().Underlying().(*types.Struct)
			if !ok {
				return nil, errors.Errorf("load: %s: %s is marked as entity but is not a struct", pos, ts.Name.Name)
			}
			s := &Schema{Name: ts.Name.Name, Package: pkg.PkgPath, Pos: pos}
			if err := s.applyDirective(opts); err != nil {
				return nil, errors.Wrapf(err, "load: %s", pos)
			}
			if err := s.loadFields(st); err != nil {
				return nil, errors.Wrapf(err, "load: %s", pos)
			}
			schemas = append(schemas, s)
		}
	}
	return schemas, nil
}

// directive returns the options of the entity directive in doc, if present.
func directive(doc *ast.CommentGroup) ([]string, bool) {
	if doc == nil {
		return nil, false
	}
	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//"+Directive)
		if !ok || text != "" && text[0] != ' ' && text[0] != '\t' {
			continue
		}
		return strings.Fields(text), true
	}
	return nil, false
}

func (s *Schema) applyDirective(opts []string) error {
	for _, opt := range opts {
		key, value, _ := strings.Cut(opt, "=")
		switch key {
		case "table":
			s.Table = value
		case "path":
			s.Path = value
		case "compressed":
			s.Compressed = true
		default:
			return errors.Errorf("unknown directive option %q", key)
		}
	}
	return nil
}

func (s *Schema) loadFields(st *types.Struct) error {
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if !v.Exported() || v.Embedded() {
			continue
		}
		tag := reflect.StructTag(st.Tag(i))
		value, _ := tag.Lookup("crud")
		if value == "-" {
			continue
		}
		f := &Field{Name: v.Name(), Info: typeInfo(v.Type())}
		if err := parseTag(f, value); err != nil {
			return errors.Wrapf(err, "field %s", v.Name())
		}
		if f.Column.Name == "" {
			if db, ok := tag.Lookup("db"); ok {
				if name, _, _ := strings.Cut(db, ","); name != "-" {
					f.Column.Name = name
				}
			}
		}
		s.Fields = append(s.Fields, f)
	}
	return nil
}

// typeInfo maps a Go type to its semantic field type.
func typeInfo(t types.Type) field.TypeInfo {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		typ := basicType(t)
		info := field.TypeInfo{Type: typ}
		if t.Name() != typ.GoType() {
			info.Ident = t.Name()
		}
		return info
	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Time" {
			return field.TypeInfo{Type: field.TypeDate}
		}
		info := field.TypeInfo{Type: field.TypeOther, Ident: obj.Name()}
		if obj.Pkg() != nil {
			info.Ident = obj.Pkg().Name() + "." + obj.Name()
			info.PkgPath = obj.Pkg().Path()
		}
		if b, ok := t.Underlying().(*types.Basic); ok {
			info.Type = basicType(b)
		}
		return info
	default:
		return field.TypeInfo{Type: field.TypeOther, Ident: types.TypeString(t, (*types.Package).Name)}
	}
}

func basicType(b *types.Basic) field.Type {
	switch b.Kind() {
	case types.Int, types.Int8, types.Int16, types.Int32, types.Uint8, types.Uint16:
		return field.TypeInteger
	case types.Int64, types.Uint, types.Uint32, types.Uint64:
		return field.TypeLong
	case types.Float32, types.Float64:
		return field.TypeFloat
	case types.String:
		return field.TypeString
	case types.Bool:
		return field.TypeBoolean
	default:
		return field.TypeOther
	}
}
