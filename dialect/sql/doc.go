// Package sql holds the runtime pieces that generated repositories, row
// mappers and table units call into.
//
// # Driver
//
// Driver is the persistence execution primitive. Statements use named
// parameters (":name") which are bound to the dialect's positional
// placeholders before execution:
//
//	drv, err := sql.Open(dialect.MySQL, dsn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, err := drv.Exec(ctx, "DELETE FROM widget WHERE id = :id", map[string]any{"id": 1})
//
// Exec reports the number of affected rows. Failures are classified into
// TableNotFoundError and OtherDatabaseError.
//
// # Row Reader
//
// RowReader exposes typed accessors keyed by column name. Accessors record
// the first conversion failure, which is reported by Err:
//
//	err := drv.Query(ctx, "SELECT id, name FROM widget", nil, func(rs *sql.RowReader) error {
//	    id, name := rs.GetInt("id"), rs.GetString("name")
//	    ...
//	    return rs.Err()
//	})
//
// # Table Creator
//
// TableCreator probes for a table and creates it when the probe reports that
// the table is absent:
//
//	created, err := sql.NewTableCreator(drv).CreateTableIfNotExists(ctx, "widget", ddl)
package sql
