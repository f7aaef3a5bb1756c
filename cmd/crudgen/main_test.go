package main

import (
	"bytes"
	"context"
	stdsql "database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/load"
	"github.com/syssam/crudgen/dialect"
	dsql "github.com/syssam/crudgen/dialect/sql"
)

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "package: example.com/app/crud\nframework: gin\n")

	// Orphan has no identifier, so the run fails after generating Widget.
	code := run([]string{"-c", cfg, "generate", "-t", dir, "-d", "postgres", "testdata/widgets.yaml"})
	assert.Equal(t, 1, code)

	src, err := os.ReadFile(filepath.Join(dir, "controller", "widget_controller.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "github.com/gin-gonic/gin")
	_, err = os.Stat(filepath.Join(dir, "repository", "widget_repository.go"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "repository", "orphan_repository.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no sources", []string{"-c", writeConfig(t, ""), "generate", "-p", "example.com/x", "-t", t.TempDir()}},
		{"missing config", []string{"-c", filepath.Join(t.TempDir(), "none.yaml"), "generate", "-p", "example.com/x", "-t", t.TempDir(), "testdata/widgets.yaml"}},
		{"bad dialect", []string{"generate", "-p", "example.com/x", "-t", t.TempDir(), "-d", "oracle", "testdata/widgets.yaml"}},
		{"missing dsn", []string{"tables", "testdata/widgets.yaml"}},
		{"unknown command", []string{"serve"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1, run(tt.args))
		})
	}
	assert.Equal(t, 0, run([]string{"--help"}))
}

func TestCreateTables(t *testing.T) {
	db, err := stdsql.Open(dialect.SQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	cfg, err := gen.NewConfig(gen.WithDialect(dialect.SQLite))
	require.NoError(t, err)
	schemas, err := load.LoadFile("testdata/widgets.yaml")
	require.NoError(t, err)
	tc := dsql.NewTableCreator(dsql.OpenDB(dialect.SQLite, db))

	var out bytes.Buffer
	err = createTables(context.Background(), &out, cfg, tc, schemas)
	require.Error(t, err)
	assert.True(t, gen.IsMissingIdentifierError(err))
	assert.Contains(t, out.String(), "ENTITY")
	assert.Regexp(t, `Widget\s+widget\s+created`, out.String())
	assert.Regexp(t, `Orphan\s+-\s+MissingIdentifierError`, out.String())

	out.Reset()
	err = createTables(context.Background(), &out, cfg, tc, schemas[:1])
	require.NoError(t, err)
	assert.Regexp(t, `Widget\s+widget\s+exists`, out.String())
}

func TestLoadSchemas(t *testing.T) {
	schemas, err := loadSchemas(context.Background(), zap.NewNop(), []string{"testdata/widgets.yaml"})
	require.NoError(t, err)
	require.Len(t, schemas, 2)
	assert.Equal(t, "Widget", schemas[0].Name)
	assert.Equal(t, "Orphan", schemas[1].Name)

	_, err = loadSchemas(context.Background(), zap.NewNop(), []string{"testdata/missing.json"})
	assert.Error(t, err)
}

func TestIsSchemaFile(t *testing.T) {
	for src, want := range map[string]bool{
		"a.yaml":       true,
		"b.YML":        true,
		"dir/c.json":   true,
		"./model":      false,
		"./model/...":  false,
		"example.com/": false,
	} {
		assert.Equal(t, want, isSchemaFile(src), src)
	}
}

func TestWatchSet(t *testing.T) {
	set := &watchSet{
		sources: []string{"testdata/widgets.yaml", "./model/...", "testdata", "example.com/app/model", "../shared"},
		target:  "crud",
	}
	assert.Equal(t, []string{"../shared", "model", "testdata"}, set.dirs())

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"go write", fsnotify.Event{Name: "model/widget.go", Op: fsnotify.Write}, true},
		{"schema create", fsnotify.Event{Name: "testdata/widgets.yaml", Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: "model/widget.go", Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: "model/widget.go", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "model/README.md", Op: fsnotify.Write}, false},
		{"generated", fsnotify.Event{Name: "crud/entity/widget.go", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.relevant(tt.ev))
		})
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "widgets.yaml")
	require.NoError(t, os.WriteFile(src, []byte("entities: []\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runs := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, zap.NewNop(), &watchSet{sources: []string{src}}, func(context.Context) error {
			select {
			case runs <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Each tick rewrites the file once, then leaves the debounce period quiet.
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(src, []byte("entities: []\n"), 0o644)
		select {
		case <-runs:
			return true
		default:
			return false
		}
	}, 50*debounce, 3*debounce)
	cancel()
	assert.NoError(t, <-done)
}
