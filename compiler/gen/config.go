package gen

import (
	"path"
	"runtime"

	"go.uber.org/zap"

	"github.com/syssam/crudgen/dialect"
)

// DefaultHeader is the header comment of generated files.
const DefaultHeader = "Code generated by crudgen. DO NOT EDIT."

// Framework names of the supported controller back ends.
const (
	FrameworkHTTP = "http"
	FrameworkGin  = "gin"
)

// Layer directories, relative to the output root.
const (
	LayerEntity     = "entity"
	LayerRepository = "repository"
	LayerService    = "service"
	LayerController = "controller"
	LayerRowMapper  = "rowmapper"
	LayerTable      = "table"
)

// Config holds the global codegen configuration.
type Config struct {
	// Package is the import path of the output root, e.g. "example.com/app/crud".
	// Each layer is generated in a sub-package of it.
	Package string
	// Target is the directory the output root is written to.
	Target string
	// Header is the comment added at the top of each generated file.
	Header string
	// Dialect is the SQL dialect of generated statements and DDL.
	Dialect string
	// Framework selects the controller routing back end.
	Framework string
	// Workers limits the number of entities generated in parallel.
	Workers int
	// Logger receives per-entity progress. It defaults to a no-op logger.
	Logger *zap.Logger
}

// defaults returns a Config with every optional setting filled in.
func defaults() *Config {
	return &Config{
		Header:    DefaultHeader,
		Dialect:   dialect.MySQL,
		Framework: FrameworkHTTP,
		Workers:   runtime.GOMAXPROCS(0),
		Logger:    zap.NewNop(),
	}
}

// LayerPackage returns the import path of a layer package.
func (c *Config) LayerPackage(layer string) string {
	return path.Join(c.Package, layer)
}

// Validate reports the first missing or invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Package == "":
		return NewConfigError("Package", nil, "missing output package in config")
	case c.Target == "":
		return NewConfigError("Target", nil, "missing target directory in config")
	case !dialect.Valid(c.Dialect):
		return NewConfigError("Dialect", c.Dialect, "unsupported dialect; use mysql, postgres, or sqlite")
	case c.Framework != FrameworkHTTP && c.Framework != FrameworkGin:
		return NewConfigError("Framework", c.Framework, "unsupported framework; use http or gin")
	case c.Workers < 1:
		return NewConfigError("Workers", c.Workers, "workers must be positive")
	case c.Logger == nil:
		return NewConfigError("Logger", nil, "logger cannot be nil")
	}
	return nil
}
