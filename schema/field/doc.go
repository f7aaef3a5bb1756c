// Package field defines the semantic types of entity fields.
//
// A semantic type decides the column type of a field, the row reader
// accessor used to read it back, and the Go type of generated entity
// structs. Anything outside the six supported types is reported as
// TypeOther so that generators can reject it explicitly.
package field
