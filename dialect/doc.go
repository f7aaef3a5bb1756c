// Package dialect identifies the SQL dialects crudgen can target.
//
// # Supported Dialects
//
// The following dialects are supported:
//
//   - MySQL: MySQL/MariaDB database (the default)
//   - Postgres: PostgreSQL database
//   - SQLite: SQLite database
//
// # Dialect Constants
//
// Each dialect is identified by a constant string that doubles as the
// database/sql driver name:
//
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//	dialect.SQLite   = "sqlite"
//
// # Identifiers and Placeholders
//
// Quote renders an identifier the way the dialect expects it, and Placeholder
// returns the positional bind marker for the n-th argument:
//
//	dialect.Quote(dialect.MySQL, "widget")    // `widget`
//	dialect.Quote(dialect.Postgres, "widget") // "widget"
//	dialect.Placeholder(dialect.Postgres, 2)  // $2
//	dialect.Placeholder(dialect.MySQL, 2)     // ?
//
// # Sub-packages
//
//   - dialect/sql: statement execution, row reading and table creation used by generated code
package dialect
