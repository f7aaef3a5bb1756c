package gen

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/syssam/crudgen/dialect"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("Custom header")(c)

		require.NoError(t, err)
		assert.Equal(t, "Custom header", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestWithPackageAndTarget(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithPackage("example.com/app/crud")(c))
	require.NoError(t, WithTarget("./crud")(c))
	assert.Equal(t, "example.com/app/crud", c.Package)
	assert.Equal(t, "./crud", c.Target)

	assert.True(t, IsConfigError(WithPackage("")(c)))
	assert.True(t, IsConfigError(WithTarget("")(c)))
	assert.Equal(t, "example.com/app/crud", c.Package)
}

func TestWithDialect(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{dialect.MySQL, false},
		{dialect.Postgres, false},
		{dialect.SQLite, false},
		{"oracle", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithDialect(tt.name)(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				assert.Empty(t, c.Dialect)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, c.Dialect)
		})
	}
}

func TestWithFramework(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithFramework(FrameworkGin)(c))
	assert.Equal(t, FrameworkGin, c.Framework)
	require.NoError(t, WithFramework(FrameworkHTTP)(c))
	assert.Equal(t, FrameworkHTTP, c.Framework)

	err := WithFramework("echo")(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingConfig))
}

func TestWithWorkersAndLogger(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(4)(c))
	assert.Equal(t, 4, c.Workers)
	assert.True(t, IsConfigError(WithWorkers(0)(c)))

	l := zap.NewExample()
	require.NoError(t, WithLogger(l)(c))
	assert.Same(t, l, c.Logger)
	assert.True(t, IsConfigError(WithLogger(nil)(c)))
}

func TestApply(t *testing.T) {
	t.Run("stops at first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(WithPackage(""), WithTarget("./crud"))
		require.Error(t, err)
		assert.Empty(t, c.Target)
	})

	t.Run("all collects errors", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(WithPackage(""), WithTarget("./crud"), WithWorkers(-1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Package")
		assert.Contains(t, err.Error(), "Workers")
		assert.Equal(t, "./crud", c.Target)
	})

	t.Run("all succeeds", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, c.ApplyAll(WithPackage("example.com/crud"), WithTarget("./crud")))
	})
}

func TestNewConfig(t *testing.T) {
	c, err := NewConfig(WithPackage("example.com/app/crud"), WithTarget("./crud"))
	require.NoError(t, err)
	assert.Equal(t, DefaultHeader, c.Header)
	assert.Equal(t, dialect.MySQL, c.Dialect)
	assert.Equal(t, FrameworkHTTP, c.Framework)
	assert.Equal(t, runtime.GOMAXPROCS(0), c.Workers)
	assert.NotNil(t, c.Logger)
	assert.NoError(t, c.Validate())
	assert.Equal(t, "example.com/app/crud/service", c.LayerPackage(LayerService))

	_, err = NewConfig(WithDialect("oracle"))
	assert.True(t, IsConfigError(err))

	assert.Panics(t, func() { MustNewConfig(WithWorkers(0)) })
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return MustNewConfig(WithPackage("example.com/crud"), WithTarget("./crud"))
	}
	tests := []struct {
		name   string
		modify func(*Config)
		option string
	}{
		{"missing package", func(c *Config) { c.Package = "" }, "Package"},
		{"missing target", func(c *Config) { c.Target = "" }, "Target"},
		{"bad dialect", func(c *Config) { c.Dialect = "db2" }, "Dialect"},
		{"bad framework", func(c *Config) { c.Framework = "echo" }, "Framework"},
		{"no workers", func(c *Config) { c.Workers = 0 }, "Workers"},
		{"nil logger", func(c *Config) { c.Logger = nil }, "Logger"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(c)
			err := c.Validate()
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.option, cerr.Option)
		})
	}
}
