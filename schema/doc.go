// Package schema documents how entities are described to crudgen.
//
// An entity is described either by a Go struct carrying a crudgen directive
// and "crud" struct tags, or by an entry of a YAML/JSON schema file. Both
// forms are read by the compiler/load package.
//
// # Go Structs
//
//	//crudgen:entity path=/widgets compressed
//	type Widget struct {
//	    ID     int     `crud:"id,length=11"`
//	    Name   string  `crud:"length=64,comment=display name"`
//	    Price  float64 `crud:"max=10,precision=2"`
//	    Active bool
//	    Notes  string  `crud:"-"`
//	}
//
// Tag options:
//
//   - id: marks the identifier field (exactly one per entity)
//   - column=<name>: column name, defaults to the snake-cased field name
//   - length=<n>: size of integer, long and string columns
//   - max=<n>, precision=<n>: total digits and scale of float columns
//   - nullable: the column accepts NULL
//   - comment=<text>: column comment
//   - "-": the field is not persisted
//
// # Schema Files
//
//	entities:
//	  - name: Widget
//	    fields:
//	      - name: id
//	        type: integer
//	        id: true
//	        column: {length: 11}
//	      - name: name
//	        type: string
//	        column: {length: 64}
//
// # Field Types
//
// The field package defines the semantic types a field may carry:
//
//	field.TypeInteger  // INT(length)
//	field.TypeLong     // BIGINT(length)
//	field.TypeFloat    // DECIMAL(max, precision)
//	field.TypeString   // VARCHAR(length)
//	field.TypeBoolean  // TINYINT(1)
//	field.TypeDate     // DATE
package schema
