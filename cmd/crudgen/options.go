package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/syssam/crudgen/compiler/load"
)

// Options are the global command line options.
type Options struct {
	Config   string          `short:"c" long:"config" description:"config file" default:"crudgen.yaml"`
	Debug    bool            `long:"debug" description:"enable development logging"`
	Generate GenerateCommand `command:"generate" alias:"gen" description:"generate the CRUD layers of entities"`
	Tables   TablesCommand   `command:"tables" description:"create the tables of entities that do not exist yet"`
}

func newOptions() *Options {
	opts := &Options{}
	opts.Generate.root = opts
	opts.Tables.root = opts
	return opts
}

// settings loads the config file and environment overlays. The config file
// may be absent unless it was set explicitly.
func (o *Options) settings() (*Settings, error) {
	s, err := LoadSettings(o.Config, o.Config != defaultConfigFile)
	if err != nil {
		return nil, err
	}
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if o.Debug {
		s.Debug = true
	}
	return s, nil
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// isSchemaFile reports whether source names a YAML or JSON schema file.
func isSchemaFile(source string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// loadSchemas reads schema files and Go package patterns, in argument
// order for files followed by all packages.
func loadSchemas(ctx context.Context, log *zap.Logger, sources []string) ([]*load.Schema, error) {
	var (
		schemas  []*load.Schema
		patterns []string
	)
	for _, src := range sources {
		if !isSchemaFile(src) {
			patterns = append(patterns, src)
			continue
		}
		found, err := load.LoadFile(src)
		if err != nil {
			return nil, err
		}
		log.Debug("schema file loaded", zap.String("file", src), zap.Int("entities", len(found)))
		schemas = append(schemas, found...)
	}
	if len(patterns) > 0 {
		found, err := load.LoadPackages(ctx, patterns...)
		if err != nil {
			return nil, err
		}
		log.Debug("packages loaded", zap.Strings("patterns", patterns), zap.Int("entities", len(found)))
		schemas = append(schemas, found...)
	}
	return schemas, nil
}
