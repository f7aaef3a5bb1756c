package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/syssam/crudgen/compiler/gen"
)

const (
	defaultConfigFile = "crudgen.yaml"
	envPrefix         = "CRUDGEN_"
)

// Settings are the persistent settings of a crudgen project, read from the
// config file and overlaid by CRUDGEN_* environment variables.
type Settings struct {
	Package   string   `yaml:"package"`
	Target    string   `yaml:"target"`
	Header    string   `yaml:"header"`
	Dialect   string   `yaml:"dialect"`
	Framework string   `yaml:"framework"`
	Workers   int      `yaml:"workers"`
	Debug     bool     `yaml:"debug"`
	DSN       string   `yaml:"dsn"`
	Sources   []string `yaml:"sources"`
}

// LoadSettings reads the settings of the config file at path. A missing
// file yields empty settings unless required is set.
func LoadSettings(path string, required bool) (*Settings, error) {
	s := &Settings{}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !required:
		return s, nil
	case err != nil:
		return nil, errors.Wrap(err, "config: read")
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	return s, nil
}

// ApplyEnv overlays the settings with the CRUDGEN_* variables found by lookup.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	for name, dst := range map[string]*string{
		"PACKAGE":   &s.Package,
		"TARGET":    &s.Target,
		"HEADER":    &s.Header,
		"DIALECT":   &s.Dialect,
		"FRAMEWORK": &s.Framework,
		"DSN":       &s.DSN,
	} {
		if v, ok := lookup(envPrefix + name); ok {
			*dst = v
		}
	}
	if v, ok := lookup(envPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sWORKERS: %w", envPrefix, err)
		}
		s.Workers = n
	}
	if v, ok := lookup(envPrefix + "DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sDEBUG: %w", envPrefix, err)
		}
		s.Debug = b
	}
	return nil
}

// Options returns the generator options of the non-empty settings.
func (s *Settings) Options() []gen.Option {
	var opts []gen.Option
	if s.Package != "" {
		opts = append(opts, gen.WithPackage(s.Package))
	}
	if s.Target != "" {
		opts = append(opts, gen.WithTarget(s.Target))
	}
	if s.Header != "" {
		opts = append(opts, gen.WithHeader(s.Header))
	}
	if s.Dialect != "" {
		opts = append(opts, gen.WithDialect(s.Dialect))
	}
	if s.Framework != "" {
		opts = append(opts, gen.WithFramework(s.Framework))
	}
	if s.Workers != 0 {
		opts = append(opts, gen.WithWorkers(s.Workers))
	}
	return opts
}
