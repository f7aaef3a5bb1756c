package field

import (
	"fmt"
	"strings"
)

// A Type represents a semantic field type.
type Type uint8

// List of semantic field types.
const (
	TypeInvalid Type = iota
	TypeInteger
	TypeLong
	TypeFloat
	TypeString
	TypeBoolean
	TypeDate
	TypeOther
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeInteger: "integer",
	TypeLong:    "long",
	TypeFloat:   "float",
	TypeString:  "string",
	TypeBoolean: "boolean",
	TypeDate:    "date",
	TypeOther:   "other",
}

// typeAliases are the accepted spellings of the supported types.
var typeAliases = map[string]Type{
	"integer": TypeInteger,
	"int":     TypeInteger,
	"long":    TypeLong,
	"bigint":  TypeLong,
	"int64":   TypeLong,
	"float":   TypeFloat,
	"decimal": TypeFloat,
	"double":  TypeFloat,
	"string":  TypeString,
	"varchar": TypeString,
	"boolean": TypeBoolean,
	"bool":    TypeBoolean,
	"date":    TypeDate,
	"time":    TypeDate,
}

// goTypes holds the natural Go type of each supported type.
var goTypes = [...]string{
	TypeInteger: "int",
	TypeLong:    "int64",
	TypeFloat:   "float64",
	TypeString:  "string",
	TypeBoolean: "bool",
	TypeDate:    "time.Time",
}

// String returns the string representation of a type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is one of the supported semantic types.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < TypeOther
}

// Sized reports if columns of this type require a length.
func (t Type) Sized() bool {
	return t == TypeInteger || t == TypeLong || t == TypeString
}

// Decimal reports if columns of this type require max digits and precision.
func (t Type) Decimal() bool {
	return t == TypeFloat
}

// GoType returns the natural Go type of a supported type, or "" otherwise.
func (t Type) GoType() string {
	if !t.Valid() {
		return ""
	}
	return goTypes[t]
}

// ParseType parses a type name. Unknown names yield TypeOther,
// and the empty string yields TypeInvalid.
func ParseType(s string) Type {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeInvalid
	}
	if t, ok := typeAliases[s]; ok {
		return t
	}
	return TypeOther
}

// TypeInfo holds the semantic type of a field together with the Go type
// that represents it, when that differs from the natural one.
type TypeInfo struct {
	Type    Type
	Ident   string // Go type identifier, e.g. "int32" or "model.Status".
	PkgPath string // Import path of Ident, empty for predeclared types.
}

// String returns the Go identifier of the type, or its semantic name.
func (t TypeInfo) String() string {
	if t.Ident != "" {
		return t.Ident
	}
	if g := t.Type.GoType(); g != "" {
		return g
	}
	return t.Type.String()
}

// Natural reports whether the field uses the natural Go type of its semantic type.
func (t TypeInfo) Natural() bool {
	return t.Ident == "" || t.PkgPath == "" && t.Ident == t.Type.GoType()
}

// Name returns the unqualified Go type name.
func (t TypeInfo) Name() string {
	if i := strings.LastIndexByte(t.Ident, '.'); i >= 0 {
		return t.Ident[i+1:]
	}
	return t.Ident
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeInfo) MarshalText() ([]byte, error) {
	if t.Type == TypeOther && t.Ident != "" {
		return []byte(t.Ident), nil
	}
	return []byte(t.Type.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown type names
// are kept as TypeOther with the name as identifier.
func (t *TypeInfo) UnmarshalText(text []byte) error {
	s := string(text)
	switch typ := ParseType(s); typ {
	case TypeInvalid:
		return fmt.Errorf("field: missing type")
	case TypeOther:
		*t = TypeInfo{Type: typ, Ident: strings.TrimSpace(s)}
	default:
		*t = TypeInfo{Type: typ}
	}
	return nil
}
