package gen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	r := &Report{
		RunID: "run",
		Outcomes: []*Outcome{
			{Entity: "Widget", Units: []string{"crud/service.WidgetService", "crud/table.WidgetTable"}},
			{Entity: "Gadget", Err: &MissingIdentifierError{Type: "Gadget"}},
		},
	}
	failed := r.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "MissingIdentifierError", failed[0].Kind())
	assert.Equal(t, "", r.Outcomes[0].Kind())

	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingIdentifier))
	assert.Contains(t, err.Error(), "Gadget: crudgen: type Gadget has no identifier field")

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), n)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ENTITY"))
	assert.Contains(t, lines[1], "ok")
	assert.Contains(t, lines[1], "crud/service.WidgetService, crud/table.WidgetTable")
	assert.Contains(t, lines[2], "MissingIdentifierError")
	assert.Equal(t, buf.String(), r.String())
}

func TestReportNoFailures(t *testing.T) {
	r := &Report{Outcomes: []*Outcome{{Entity: "Widget"}}}
	assert.Empty(t, r.Failed())
	assert.NoError(t, r.Err())
}
