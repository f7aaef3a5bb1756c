package sql

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/schema/field"
)

// Import paths referenced by generated code.
const (
	sqlPkg     = "github.com/syssam/crudgen/dialect/sql"
	ginPkg     = "github.com/gin-gonic/gin"
	contextPkg = "context"
)

// accessors maps semantic types to the RowReader method reading them.
var accessors = map[field.Type]string{
	field.TypeInteger: "GetInt",
	field.TypeLong:    "GetLong",
	field.TypeFloat:   "GetFloat",
	field.TypeBoolean: "GetBoolean",
	field.TypeString:  "GetString",
	field.TypeDate:    "GetDate",
}

// entityType returns the struct type of an entity.
func entityType(e *gen.Entity) jen.Code {
	return jen.Qual(e.Type.PkgPath, e.Type.Name)
}

// layerType returns the type referenced by a LayerRef.
func layerType(r *gen.LayerRef) jen.Code {
	return jen.Qual(r.Type.PkgPath, r.Type.Name)
}

// goType returns the Go type of the struct field holding f. Fields without
// a known Go type are rejected by gen.NewEntity.
func goType(f *gen.Field) jen.Code {
	switch info := f.Info; {
	case info.PkgPath != "":
		return jen.Qual(info.PkgPath, info.Name())
	case info.Ident != "":
		return jen.Id(info.Ident)
	}
	switch f.Type {
	case field.TypeInteger:
		return jen.Int()
	case field.TypeLong:
		return jen.Int64()
	case field.TypeFloat:
		return jen.Float64()
	case field.TypeString:
		return jen.String()
	case field.TypeBoolean:
		return jen.Bool()
	case field.TypeDate:
		return jen.Qual("time", "Time")
	default:
		panic(fmt.Sprintf("crudgen/gen: field %q of type %s has no Go type", f.Name, f.Type))
	}
}

// convert converts v from the natural Go type of f to its declared type.
func convert(f *gen.Field, v *jen.Statement) jen.Code {
	if f.Info.Natural() {
		return v
	}
	return jen.Add(goType(f)).Call(v)
}

// ctxParam is the context.Context parameter of generated methods.
func ctxParam() jen.Code {
	return jen.Id("ctx").Qual(contextPkg, "Context")
}

// boolResult is the result list of mutation operations.
func boolResult() jen.Code {
	return jen.Params(jen.Bool(), jen.Error())
}

// listResult is the result list of the get operation.
func listResult(e *gen.Entity) jen.Code {
	return jen.Params(jen.Index().Op("*").Add(entityType(e)), jen.Error())
}

// opParams returns the parameters of an operation, after ctx. The entity
// instance is named body in controllers and instance in lower layers.
func opParams(e *gen.Entity, op *gen.Operation, body string) []jen.Code {
	params := []jen.Code{ctxParam()}
	if op.ID {
		params = append(params, jen.Id(gen.IDParam).Add(goType(e.ID)))
	}
	if op.Body {
		params = append(params, jen.Id(body).Op("*").Add(entityType(e)))
	}
	return params
}

// opArgs returns the arguments passing the parameters of opParams on.
func opArgs(op *gen.Operation, body string) []jen.Code {
	args := []jen.Code{jen.Id("ctx")}
	if op.ID {
		args = append(args, jen.Id(gen.IDParam))
	}
	if op.Body {
		args = append(args, jen.Id(body))
	}
	return args
}

// opResult returns the result list of an operation.
func opResult(e *gen.Entity, op *gen.Operation) jen.Code {
	if op.List {
		return listResult(e)
	}
	return boolResult()
}

// autoIncrement reports whether the database assigns identifiers of e.
func autoIncrement(e *gen.Entity) bool {
	return e.ID.Type == field.TypeInteger || e.ID.Type == field.TypeLong
}

// insertFields returns the fields written by inserts.
func insertFields(e *gen.Entity) []*gen.Field {
	if autoIncrement(e) {
		return e.MutableFields()
	}
	return e.Fields
}
