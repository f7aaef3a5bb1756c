package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink(t *testing.T) {
	dir := t.TempDir()
	c := MustNewConfig(WithPackage("example.com/app/crud"), WithTarget(dir))
	src := "package service\nimport \"fmt\"\ntype WidgetService struct{\nname string\n}\n"
	u := c.NewUnit(LayerService, "WidgetService", []byte(src))

	require.NoError(t, NewFileSink(dir).Write(context.Background(), u))

	out, err := os.ReadFile(filepath.Join(dir, "service", "widget_service.go"))
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"fmt"`, "unused imports are removed")
	assert.Contains(t, string(out), "\tname string\n")

	info, err := os.Stat(filepath.Join(dir, "service", "widget_service.go"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm()&0o644)
}

func TestFileSinkFormatError(t *testing.T) {
	dir := t.TempDir()
	c := MustNewConfig(WithPackage("example.com/app/crud"), WithTarget(dir))
	u := c.NewUnit(LayerService, "WidgetService", []byte("package service\nfunc {"))

	err := NewFileSink(dir).Write(context.Background(), u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format service/widget_service.go")

	debug, rerr := os.ReadFile(filepath.Join(dir, "service", "widget_service.go.error"))
	require.NoError(t, rerr)
	assert.Equal(t, "package service\nfunc {", string(debug))
	_, serr := os.Stat(filepath.Join(dir, "service", "widget_service.go"))
	assert.True(t, os.IsNotExist(serr))
}

func TestFileSinkNonGo(t *testing.T) {
	dir := t.TempDir()
	u := &Unit{Package: "example.com/crud/table", Name: "widget", File: "table/widget.sql", Source: []byte("CREATE TABLE widget")}
	require.NoError(t, NewFileSink(dir).Write(context.Background(), u))
	out, err := os.ReadFile(filepath.Join(dir, "table", "widget.sql"))
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE widget", string(out))
}

func TestFileSinkCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewFileSink(t.TempDir()).Write(ctx, &Unit{File: "a.go"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()
	c := MustNewConfig(WithPackage("example.com/crud"), WithTarget("crud"))
	b := c.NewUnit(LayerTable, "WidgetTable", []byte("b"))
	a := c.NewUnit(LayerService, "WidgetService", []byte("a"))

	require.NoError(t, s.Write(context.Background(), b))
	require.NoError(t, s.Write(context.Background(), a))
	a.Source[0] = 'x'

	got, ok := s.Unit("example.com/crud/service.WidgetService")
	require.True(t, ok)
	assert.Equal(t, "a", string(got.Source), "stored units are copies")

	units := s.Units()
	require.Len(t, units, 2)
	assert.Equal(t, "example.com/crud/service.WidgetService", units[0].FullName())
	assert.Equal(t, "example.com/crud/table.WidgetTable", units[1].FullName())

	_, ok = s.Unit("missing")
	assert.False(t, ok)
}
