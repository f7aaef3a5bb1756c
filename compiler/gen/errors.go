package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a schema definition error.
	ErrInvalidSchema = errors.New("crudgen: invalid schema")
	// ErrMissingIdentifier indicates an entity without identifier field.
	ErrMissingIdentifier = errors.New("crudgen: missing identifier")
	// ErrMissingColumnMetadata indicates a field without required size metadata.
	ErrMissingColumnMetadata = errors.New("crudgen: missing column metadata")
	// ErrUnsupportedFieldType indicates a field type that a generator cannot handle.
	ErrUnsupportedFieldType = errors.New("crudgen: unsupported field type")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("crudgen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("crudgen: code generation failed")
	// ErrEmissionFailed indicates a failure to persist a generated unit.
	ErrEmissionFailed = errors.New("crudgen: emission failed")
)

// SchemaError represents a schema definition error.
type SchemaError struct {
	Type    string // Entity type name
	Field   string // Field name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("crudgen: schema error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{
		Type:    typeName,
		Field:   fieldName,
		Message: message,
		Cause:   cause,
	}
}

// MissingIdentifierError is returned for an entity without identifier field.
type MissingIdentifierError struct {
	Type string
}

// Error implements the error interface.
func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("crudgen: type %s has no identifier field", e.Type)
}

// Is reports whether the target matches the sentinel error for MissingIdentifierError.
func (e *MissingIdentifierError) Is(target error) bool {
	return target == ErrMissingIdentifier || target == ErrInvalidSchema
}

// AmbiguousIdentifierError is returned for an entity with more than one identifier field.
type AmbiguousIdentifierError struct {
	Type   string
	Fields []string
}

// Error implements the error interface.
func (e *AmbiguousIdentifierError) Error() string {
	return fmt.Sprintf("crudgen: type %s has %d identifier fields (%s), expected exactly one",
		e.Type, len(e.Fields), strings.Join(e.Fields, ", "))
}

// Is reports whether the target matches the sentinel error for AmbiguousIdentifierError.
func (e *AmbiguousIdentifierError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// MissingColumnMetadataError is returned for a field whose type requires
// size metadata that was not provided.
type MissingColumnMetadataError struct {
	Type      string
	Field     string
	FieldType string
	Metadata  string // e.g. "length", "max", "precision"
}

// Error implements the error interface.
func (e *MissingColumnMetadataError) Error() string {
	return fmt.Sprintf("crudgen: field %s.%s of type %s requires column %s", e.Type, e.Field, e.FieldType, e.Metadata)
}

// Is reports whether the target matches the sentinel error for MissingColumnMetadataError.
func (e *MissingColumnMetadataError) Is(target error) bool {
	return target == ErrMissingColumnMetadata || target == ErrInvalidSchema
}

// UnsupportedFieldTypeError is returned when a generator has no mapping for
// the type of a field.
type UnsupportedFieldTypeError struct {
	Phase     string // "rowmapper", "table", "controller", etc.
	Type      string
	Field     string
	FieldType string
}

// Error implements the error interface.
func (e *UnsupportedFieldTypeError) Error() string {
	var b strings.Builder
	b.WriteString("crudgen: unsupported field type")
	if e.FieldType != "" {
		b.WriteString(" ")
		b.WriteString(e.FieldType)
	}
	fmt.Fprintf(&b, " for %s.%s", e.Type, e.Field)
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for UnsupportedFieldTypeError.
func (e *UnsupportedFieldTypeError) Is(target error) bool {
	return target == ErrUnsupportedFieldType
}

// NewUnsupportedFieldTypeError creates a new UnsupportedFieldTypeError for field f of entity e.
func NewUnsupportedFieldTypeError(phase string, e *Entity, f *Field) *UnsupportedFieldTypeError {
	return &UnsupportedFieldTypeError{
		Phase:     phase,
		Type:      e.Name,
		Field:     f.Name,
		FieldType: f.Type.String(),
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("crudgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("crudgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "repository", "service", "controller", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("crudgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// EmissionError is returned when a generated unit could not be persisted.
type EmissionError struct {
	Unit  string // Full name of the unit.
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *EmissionError) Error() string {
	var b strings.Builder
	b.WriteString("crudgen: emit ")
	b.WriteString(e.Unit)
	if e.Path != "" {
		b.WriteString(" to ")
		b.WriteString(e.Path)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *EmissionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for EmissionError.
func (e *EmissionError) Is(target error) bool {
	return target == ErrEmissionFailed
}

// DuplicateUnitError is returned when two generated units share a full name
// or a file.
type DuplicateUnitError struct {
	Unit   string // Full name of the unit.
	File   string // Colliding file, empty when the full name collides.
	Entity string // Entity that generated it first.
}

// Error implements the error interface.
func (e *DuplicateUnitError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("crudgen: unit %s writes %s (already generated for %s)", e.Unit, e.File, e.Entity)
	}
	return fmt.Sprintf("crudgen: duplicate unit %s (already generated for %s)", e.Unit, e.Entity)
}

// Is reports whether the target matches the sentinel error for DuplicateUnitError.
func (e *DuplicateUnitError) Is(target error) bool {
	return target == ErrEmissionFailed
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsMissingIdentifierError reports whether the error is a MissingIdentifierError.
func IsMissingIdentifierError(err error) bool {
	var idErr *MissingIdentifierError
	return errors.As(err, &idErr)
}

// IsMissingColumnMetadataError reports whether the error is a MissingColumnMetadataError.
func IsMissingColumnMetadataError(err error) bool {
	var mdErr *MissingColumnMetadataError
	return errors.As(err, &mdErr)
}

// IsUnsupportedFieldTypeError reports whether the error is an UnsupportedFieldTypeError.
func IsUnsupportedFieldTypeError(err error) bool {
	var typeErr *UnsupportedFieldTypeError
	return errors.As(err, &typeErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsEmissionError reports whether the error is an EmissionError or a DuplicateUnitError.
func IsEmissionError(err error) bool {
	return errors.Is(err, ErrEmissionFailed)
}

// ErrorKind returns the name of the error type reported for err in batch
// reports, or "" for nil.
func ErrorKind(err error) string {
	var (
		missingID   *MissingIdentifierError
		ambiguousID *AmbiguousIdentifierError
		metadata    *MissingColumnMetadataError
		unsupported *UnsupportedFieldTypeError
		duplicate   *DuplicateUnitError
		emission    *EmissionError
		schema      *SchemaError
		generation  *GenerationError
		config      *ConfigError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &missingID):
		return "MissingIdentifierError"
	case errors.As(err, &ambiguousID):
		return "AmbiguousIdentifierError"
	case errors.As(err, &metadata):
		return "MissingColumnMetadataError"
	case errors.As(err, &unsupported):
		return "UnsupportedFieldTypeError"
	case errors.As(err, &duplicate):
		return "DuplicateUnitError"
	case errors.As(err, &emission):
		return "EmissionError"
	case errors.As(err, &schema):
		return "SchemaError"
	case errors.As(err, &generation):
		return "GenerationError"
	case errors.As(err, &config):
		return "ConfigError"
	default:
		return fmt.Sprintf("%T", err)
	}
}
