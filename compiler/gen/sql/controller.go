package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/schema/field"
)

// router generates the framework specific parts of a controller.
type router interface {
	// register returns the Register method parameter.
	register() jen.Code
	// route returns the statement registering handler for op.
	route(op *gen.Operation, handler jen.Code) jen.Code
	// handler returns the handler parameters.
	handler() []jen.Code
	// context returns the request context expression.
	context() jen.Code
	// pathID returns the raw identifier path parameter.
	pathID() jen.Code
	// bind returns the statement decoding the request body into body.
	bind() jen.Code
	// fail returns the statements responding with err and status.
	fail(status string) []jen.Code
	// respond returns the statements responding with result.
	respond() []jen.Code
}

func newRouter(framework string) router {
	if framework == gen.FrameworkGin {
		return ginRouter{}
	}
	return httpRouter{}
}

// genController generates the controller file ({entity}_controller.go).
// Includes: controller struct, CRUD methods, route registration, handlers.
func genController(c *gen.Config, e *gen.Entity, below *gen.LayerRef) (*jen.File, error) {
	name := gen.ControllerName(e.Name)
	if below == nil {
		return nil, gen.NewGenerationError(gen.LayerController, gen.FileName(name), "missing service reference", nil)
	}
	switch e.ID.Type {
	case field.TypeInteger, field.TypeLong, field.TypeString:
	default:
		// Identifiers are bound from route paths.
		return nil, gen.NewUnsupportedFieldTypeError(gen.LayerController, e, e.ID)
	}
	var (
		f   = c.NewFile(gen.LayerController)
		r   = newRouter(c.Framework)
		ops = gen.Operations(e)
	)
	genDelegate(f, e, name, "c", "body", below)

	f.Commentf("Register registers the %s routes.", e.Name)
	f.Func().Params(jen.Id("c").Op("*").Id(name)).Id("Register").Params(r.register()).BlockFunc(func(g *jen.Group) {
		for _, op := range ops {
			g.Add(r.route(op, jen.Id("c").Dot("handle"+op.Method)))
		}
	})
	for _, op := range ops {
		genHandler(f, e, name, r, op)
	}
	return f, nil
}

// genHandler generates the handler of one operation. It decodes the
// identifier and body, calls the controller method and encodes its result.
func genHandler(f *jen.File, e *gen.Entity, name string, r router, op *gen.Operation) {
	f.Commentf("handle%s serves %s.", op.Method, op.Pattern())
	f.Func().Params(jen.Id("c").Op("*").Id(name)).Id("handle"+op.Method).Params(r.handler()...).BlockFunc(func(g *jen.Group) {
		if op.ID {
			genPathID(g, e.ID, r)
		}
		if op.Body {
			g.Id("body").Op(":=").Op("&").Add(entityType(e)).Values()
			g.If(r.bind(), jen.Err().Op("!=").Nil()).Block(
				append(r.fail("StatusBadRequest"), jen.Return())...,
			)
		}
		args := []jen.Code{r.context()}
		if op.ID {
			args = append(args, jen.Id(gen.IDParam))
		}
		if op.Body {
			args = append(args, jen.Id("body"))
		}
		g.List(jen.Id("result"), jen.Err()).Op(":=").Id("c").Dot(op.Method).Call(args...)
		g.If(jen.Err().Op("!=").Nil()).Block(
			append(r.fail("StatusInternalServerError"), jen.Return())...,
		)
		for _, s := range r.respond() {
			g.Add(s)
		}
	})
}

// genPathID declares id from the identifier path parameter.
func genPathID(g *jen.Group, id *gen.Field, r router) {
	if id.Type == field.TypeString {
		g.Id(gen.IDParam).Op(":=").Add(convert(id, jen.Add(r.pathID())))
		return
	}
	bits := 64
	if id.Type == field.TypeInteger {
		bits = 32
	}
	g.List(jen.Id("n"), jen.Err()).Op(":=").Qual("strconv", "ParseInt").Call(r.pathID(), jen.Lit(10), jen.Lit(bits))
	g.If(jen.Err().Op("!=").Nil()).Block(
		append(r.fail("StatusBadRequest"), jen.Return())...,
	)
	if id.Type == field.TypeLong && id.Info.Natural() {
		g.Id(gen.IDParam).Op(":=").Id("n")
		return
	}
	g.Id(gen.IDParam).Op(":=").Add(goType(id)).Call(jen.Id("n"))
}

// httpRouter registers routes on a net/http ServeMux.
type httpRouter struct{}

func (httpRouter) register() jen.Code {
	return jen.Id("mux").Op("*").Qual("net/http", "ServeMux")
}

func (httpRouter) route(op *gen.Operation, handler jen.Code) jen.Code {
	return jen.Id("mux").Dot("HandleFunc").Call(jen.Lit(op.Pattern()), handler)
}

func (httpRouter) handler() []jen.Code {
	return []jen.Code{
		jen.Id("w").Qual("net/http", "ResponseWriter"),
		jen.Id("r").Op("*").Qual("net/http", "Request"),
	}
}

func (httpRouter) context() jen.Code {
	return jen.Id("r").Dot("Context").Call()
}

func (httpRouter) pathID() jen.Code {
	return jen.Id("r").Dot("PathValue").Call(jen.Lit(gen.IDParam))
}

func (httpRouter) bind() jen.Code {
	return jen.Err().Op(":=").Qual("encoding/json", "NewDecoder").Call(jen.Id("r").Dot("Body")).Dot("Decode").Call(jen.Id("body"))
}

func (httpRouter) fail(status string) []jen.Code {
	return []jen.Code{
		jen.Qual("net/http", "Error").Call(jen.Id("w"), jen.Err().Dot("Error").Call(), jen.Qual("net/http", status)),
	}
}

func (httpRouter) respond() []jen.Code {
	return []jen.Code{
		jen.Id("w").Dot("Header").Call().Dot("Set").Call(jen.Lit("Content-Type"), jen.Lit("application/json")),
		jen.If(
			jen.Err().Op(":=").Qual("encoding/json", "NewEncoder").Call(jen.Id("w")).Dot("Encode").Call(jen.Id("result")),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Qual("net/http", "Error").Call(jen.Id("w"), jen.Err().Dot("Error").Call(), jen.Qual("net/http", "StatusInternalServerError")),
		),
	}
}

// ginRouter registers routes on a gin.IRouter.
type ginRouter struct{}

func (ginRouter) register() jen.Code {
	return jen.Id("router").Qual(ginPkg, "IRouter")
}

func (ginRouter) route(op *gen.Operation, handler jen.Code) jen.Code {
	return jen.Id("router").Dot(op.Verb).Call(jen.Lit(op.ColonPath()), handler)
}

func (ginRouter) handler() []jen.Code {
	return []jen.Code{jen.Id("ctx").Op("*").Qual(ginPkg, "Context")}
}

func (ginRouter) context() jen.Code {
	return jen.Id("ctx").Dot("Request").Dot("Context").Call()
}

func (ginRouter) pathID() jen.Code {
	return jen.Id("ctx").Dot("Param").Call(jen.Lit(gen.IDParam))
}

func (ginRouter) bind() jen.Code {
	return jen.Err().Op(":=").Id("ctx").Dot("ShouldBindJSON").Call(jen.Id("body"))
}

func (ginRouter) fail(status string) []jen.Code {
	return []jen.Code{
		jen.Id("ctx").Dot("JSON").Call(jen.Qual("net/http", status), jen.Qual(ginPkg, "H").Values(jen.Dict{
			jen.Lit("error"): jen.Err().Dot("Error").Call(),
		})),
	}
}

func (ginRouter) respond() []jen.Code {
	return []jen.Code{
		jen.Id("ctx").Dot("JSON").Call(jen.Qual("net/http", "StatusOK"), jen.Id("result")),
	}
}
