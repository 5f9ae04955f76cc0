package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

func TestProjectKeepsKeyAndExistingColumns(t *testing.T) {
	raw := table.New("id", "val", "extra")
	require.NoError(t, raw.AppendRow(table.String(" 1 "), table.String("x"), table.String("drop me")))

	p := Project(raw, "id", []string{"val", "nonexistent"})

	assert.Equal(t, []string{"id", "val", "Key"}, p.Columns())
	assert.Equal(t, table.String(" 1 "), p.Cell(0, "id"), "original key column stays unnormalized")
	assert.Equal(t, table.String("1"), p.Cell(0, "Key"))
	assert.Equal(t, table.String("x"), p.Cell(0, "val"))
}

func TestProjectEmptyTable(t *testing.T) {
	p := Project(table.New(), "id", []string{"val"})

	assert.Equal(t, []string{"id", "val", "Key"}, p.Columns())
	assert.Equal(t, 0, p.NumRows())
}

func TestProjectSynthesizesMissingKeyColumn(t *testing.T) {
	raw := table.New("val")
	require.NoError(t, raw.AppendRow(table.String("x")))

	p := Project(raw, "id", []string{"val"})

	assert.True(t, p.HasColumn("id"))
	assert.True(t, p.Cell(0, "id").IsMissing())
	assert.True(t, p.Cell(0, "Key").IsMissing())
	// The synthesized column never leaks into the input.
	assert.False(t, raw.HasColumn("id"))
}

func TestProjectNormalizesKeys(t *testing.T) {
	raw := table.New("id")
	require.NoError(t, raw.AppendRow(table.String("12,345.00")))
	require.NoError(t, raw.AppendRow(table.Missing))

	p := Project(raw, "id", nil)

	assert.Equal(t, table.String("1234500"), p.Cell(0, "Key"))
	assert.True(t, p.Cell(1, "Key").IsMissing())
}

func TestProjectFallsBackOnKeyNameCollision(t *testing.T) {
	// A source whose key column is literally named "Key" collides with the
	// normalized key column; the raw values win over failing the sheet.
	raw := table.New("Key")
	require.NoError(t, raw.AppendRow(table.String(" 1 ")))

	p := Project(raw, "Key", nil)

	assert.Equal(t, []string{"Key"}, p.Columns())
	assert.Equal(t, table.String(" 1 "), p.Cell(0, "Key"))
}
