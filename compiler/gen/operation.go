package gen

import "net/http"

// Operation names.
const (
	OpCreate = "create"
	OpGet    = "get"
	OpUpdate = "update"
	OpDelete = "delete"
)

// IDParam is the name of the identifier route parameter.
const IDParam = "id"

// Operation describes one CRUD operation as exposed by every layer.
type Operation struct {
	// Name is the lower case operation name, e.g. "update".
	Name string
	// Method is the Go method name, e.g. "Update".
	Method string
	// Verb is the HTTP method of the route.
	Verb string
	// Path is the route path. Identifier segments use the {id} form.
	Path string
	// Body reports whether the operation takes an entity instance.
	Body bool
	// ID reports whether the operation takes an identifier.
	ID bool
	// List reports whether the operation returns a list of instances
	// instead of a success flag.
	List bool
}

// Operations returns the four operations of an entity in emission order.
func Operations(e *Entity) []*Operation {
	item := e.Path + "/{" + IDParam + "}"
	return []*Operation{
		{Name: OpCreate, Method: "Create", Verb: http.MethodPost, Path: e.Path, Body: true},
		{Name: OpGet, Method: "Get", Verb: http.MethodGet, Path: e.Path, List: true},
		{Name: OpUpdate, Method: "Update", Verb: http.MethodPut, Path: item, Body: true, ID: true},
		{Name: OpDelete, Method: "Delete", Verb: http.MethodDelete, Path: item, ID: true},
	}
}

// Pattern returns the route pattern in net/http ServeMux syntax.
func (o *Operation) Pattern() string {
	return o.Verb + " " + o.Path
}

// ColonPath returns the route path with identifier segments in :id form,
// as used by gin.
func (o *Operation) ColonPath() string {
	if !o.ID {
		return o.Path
	}
	return o.Path[:len(o.Path)-len(IDParam)-2] + ":" + IDParam
}
