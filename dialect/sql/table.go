package sql

import (
	"context"

	"go.uber.org/zap"

	"github.com/syssam/crudgen/dialect"
)

// TableCreator creates tables that do not exist yet.
type TableCreator struct {
	driver *Driver
	log    *zap.Logger
}

// TableOption configures a TableCreator.
type TableOption func(*TableCreator)

// WithLogger sets the logger used to report probe and creation outcomes.
func WithLogger(l *zap.Logger) TableOption {
	return func(c *TableCreator) {
		if l != nil {
			c.log = l
		}
	}
}

// NewTableCreator returns a TableCreator executing on drv.
func NewTableCreator(drv *Driver, opts ...TableOption) *TableCreator {
	c := &TableCreator{driver: drv, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exists reports whether table exists. Probe failures other than a missing
// table are returned as errors.
func (c *TableCreator) Exists(ctx context.Context, table string) (bool, error) {
	switch err := c.probe(ctx, table); {
	case err == nil:
		return true, nil
	case IsTableNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

// CreateTableIfNotExists executes stmt when the probe reports that table is
// absent. It returns false without executing anything if the table exists,
// and true once the table was created. Any other failure is returned.
func (c *TableCreator) CreateTableIfNotExists(ctx context.Context, table, stmt string) (bool, error) {
	log := c.log.With(zap.String("table", table), zap.String("dialect", c.driver.Dialect()))
	switch err := c.probe(ctx, table); {
	case err == nil:
		log.Info("table already exists")
		return false, nil
	case !IsTableNotFound(err):
		log.Error("probe table", zap.Error(err))
		return false, err
	}
	if _, err := c.driver.ExecContext(ctx, stmt); err != nil {
		log.Error("create table", zap.Error(err))
		return false, &OtherDatabaseError{Op: "create table " + table, Cause: err}
	}
	log.Info("table created")
	return true, nil
}

// probe returns nil if table exists, a *TableNotFoundError if it does not,
// and a *OtherDatabaseError for anything else.
func (c *TableCreator) probe(ctx context.Context, table string) error {
	if c.driver.Dialect() == dialect.SQLite {
		return c.probeCatalog(ctx, table)
	}
	rows, err := c.driver.QueryContext(ctx, "SELECT 1 FROM "+dialect.Quote(c.driver.Dialect(), table)+" LIMIT 1")
	if err != nil {
		return classify("probe table "+table, table, err)
	}
	defer rows.Close()
	for rows.Next() {
	}
	return classify("probe table "+table, table, rows.Err())
}

// probeCatalog looks the table up in the SQLite schema table.
func (c *TableCreator) probeCatalog(ctx context.Context, table string) error {
	rows, err := c.driver.QueryContext(ctx, "SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table)
	if err != nil {
		return classify("probe table "+table, table, err)
	}
	defer rows.Close()
	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return &OtherDatabaseError{Op: "probe table " + table, Cause: err}
		}
	}
	if err := rows.Err(); err != nil {
		return classify("probe table "+table, table, err)
	}
	if n == 0 {
		return &TableNotFoundError{Table: table}
	}
	return nil
}
