package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/gen/sql"
	"github.com/syssam/crudgen/compiler/load"
	dsql "github.com/syssam/crudgen/dialect/sql"
)

// TablesCommand creates the table of every entity that does not have one yet.
type TablesCommand struct {
	DSN     string `long:"dsn" description:"data source name of the database"`
	Dialect string `short:"d" long:"dialect" description:"SQL dialect (mysql, postgres, sqlite)"`

	root *Options
}

// Execute implements flags.Commander.
func (c *TablesCommand) Execute(args []string) error {
	s, err := c.root.settings()
	if err != nil {
		return err
	}
	if c.DSN != "" {
		s.DSN = c.DSN
	}
	if c.Dialect != "" {
		s.Dialect = c.Dialect
	}
	if s.DSN == "" {
		return gen.NewConfigError("DSN", nil, "missing data source name")
	}
	sources := args
	if len(sources) == 0 {
		sources = s.Sources
	}
	log, err := newLogger(s.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	cfg, err := gen.NewConfig(append(s.Options(), gen.WithLogger(log))...)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	schemas, err := loadSchemas(ctx, log, sources)
	if err != nil {
		return err
	}
	drv, err := dsql.Open(cfg.Dialect, s.DSN)
	if err != nil {
		return err
	}
	defer drv.Close()
	return createTables(ctx, os.Stdout, cfg, dsql.NewTableCreator(drv, dsql.WithLogger(log)), schemas)
}

// createTables creates the missing tables of schemas and writes one status
// line per entity to w. A failing entity does not stop the others.
func createTables(ctx context.Context, w io.Writer, cfg *gen.Config, tc *dsql.TableCreator, schemas []*load.Schema) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tTABLE\tSTATUS")
	var errs []error
	for _, s := range schemas {
		table, status, err := createTable(ctx, cfg, tc, s)
		if err != nil {
			cfg.Logger.Error("entity failed", zap.String("entity", s.Name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
			status = gen.ErrorKind(err) + ": " + err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, table, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func createTable(ctx context.Context, cfg *gen.Config, tc *dsql.TableCreator, s *load.Schema) (string, string, error) {
	e, err := gen.NewEntity(cfg, s)
	if err != nil {
		return "-", "", err
	}
	stmt, err := sql.CreateStatement(cfg.Dialect, e)
	if err != nil {
		return e.Table, "", err
	}
	created, err := tc.CreateTableIfNotExists(ctx, e.Table, stmt)
	switch {
	case err != nil:
		return e.Table, "", err
	case created:
		return e.Table, "created", nil
	default:
		return e.Table, "exists", nil
	}
}
