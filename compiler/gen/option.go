package gen

import (
	"errors"

	"go.uber.org/zap"

	"github.com/syssam/crudgen/dialect"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the output package import path.
// For example: "github.com/org/project/crud".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithDialect sets the SQL dialect of generated statements and DDL.
// Supported dialects: "mysql", "postgres", "sqlite".
func WithDialect(name string) Option {
	return func(c *Config) error {
		if !dialect.Valid(name) {
			return NewConfigError("Dialect", name, "unsupported dialect; use mysql, postgres, or sqlite")
		}
		c.Dialect = name
		return nil
	}
}

// WithFramework sets the controller routing back end.
// Supported frameworks: "http" (net/http), "gin".
func WithFramework(name string) Option {
	return func(c *Config) error {
		switch name {
		case FrameworkHTTP, FrameworkGin:
			c.Framework = name
			return nil
		default:
			return NewConfigError("Framework", name, "unsupported framework; use http or gin")
		}
	}
}

// WithWorkers sets the number of entities generated in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger of the generator.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with defaults and the given options applied.
func NewConfig(opts ...Option) (*Config, error) {
	c := defaults()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
