package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/gen/sql"
)

// GenerateCommand generates the CRUD layers of the entities found in its
// arguments. Arguments ending in .yaml, .yml or .json are schema files,
// anything else is a Go package pattern.
type GenerateCommand struct {
	Package   string `short:"p" long:"package" description:"import path of the output root"`
	Target    string `short:"t" long:"target" description:"output directory"`
	Header    string `long:"header" description:"header comment of generated files"`
	Dialect   string `short:"d" long:"dialect" description:"SQL dialect (mysql, postgres, sqlite)"`
	Framework string `short:"f" long:"framework" description:"controller framework (http, gin)"`
	Workers   int    `short:"w" long:"workers" description:"entities generated in parallel"`
	Watch     bool   `long:"watch" description:"regenerate when a source changes"`

	root *Options
}

// overlay sets the settings given on the command line.
func (c *GenerateCommand) overlay(s *Settings) {
	for _, o := range []struct {
		flag string
		dst  *string
	}{
		{c.Package, &s.Package},
		{c.Target, &s.Target},
		{c.Header, &s.Header},
		{c.Dialect, &s.Dialect},
		{c.Framework, &s.Framework},
	} {
		if o.flag != "" {
			*o.dst = o.flag
		}
	}
	if c.Workers != 0 {
		s.Workers = c.Workers
	}
}

// Execute implements flags.Commander.
func (c *GenerateCommand) Execute(args []string) error {
	s, err := c.root.settings()
	if err != nil {
		return err
	}
	c.overlay(s)
	sources := args
	if len(sources) == 0 {
		sources = s.Sources
	}
	if len(sources) == 0 {
		return fmt.Errorf("generate: no schema files or packages given")
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
	if err := cfg.Validate(); err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	generate := func(ctx context.Context) error {
		schemas, err := loadSchemas(ctx, log, sources)
		if err != nil {
			return err
		}
		report, err := sql.Generate(ctx, cfg, schemas...)
		if err != nil {
			return err
		}
		if _, err := report.WriteTo(os.Stdout); err != nil {
			return err
		}
		return report.Err()
	}
	err = generate(ctx)
	if !c.Watch {
		return err
	}
	if err != nil {
		log.Error("generation failed", zap.Error(err))
	}
	return watch(ctx, log, &watchSet{sources: sources, target: cfg.Target}, generate)
}
