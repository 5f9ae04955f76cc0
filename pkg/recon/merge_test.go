package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

func projectedSource(t *testing.T, label, keyColumn string, compareColumns []string, rows ...[]table.Value) SourceTable {
	t.Helper()
	raw := table.New(append([]string{keyColumn}, compareColumns...)...)
	for _, row := range rows {
		require.NoError(t, raw.AppendRow(row...))
	}
	return SourceTable{Label: label, Table: Project(raw, keyColumn, compareColumns)}
}

func TestMergeZeroSources(t *testing.T) {
	m := Merge(nil)

	assert.Equal(t, []string{"Key"}, m.Table().Columns())
	assert.Equal(t, 0, m.NumRows())
}

func TestMergeSingleSourceRenames(t *testing.T) {
	a := projectedSource(t, "A", "id", []string{"val"},
		[]table.Value{table.String("1"), table.String("x")})

	m := Merge([]SourceTable{a})

	assert.Equal(t, []string{"Key", "id_A", "val_A"}, m.Table().Columns())
	assert.Equal(t, 1, m.NumRows())
	assert.Equal(t, table.String("x"), m.Cell(0, "A", "val"))
}

func TestMergeOuterJoin(t *testing.T) {
	a := projectedSource(t, "A", "id", []string{"val"},
		[]table.Value{table.String("1"), table.String("x")},
		[]table.Value{table.String("2"), table.String("y")})
	b := projectedSource(t, "B", "id", []string{"val"},
		[]table.Value{table.String("2"), table.String("y2")},
		[]table.Value{table.String("3"), table.String("z")})

	m := Merge([]SourceTable{a, b})

	// Keys from the left side first, then new keys from the right.
	keys := m.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, table.String("1"), keys[0])
	assert.Equal(t, table.String("2"), keys[1])
	assert.Equal(t, table.String("3"), keys[2])

	// Non-matching side holds missing values.
	assert.Equal(t, table.String("x"), m.Cell(0, "A", "val"))
	assert.True(t, m.Cell(0, "B", "val").IsMissing())
	assert.Equal(t, table.String("y"), m.Cell(1, "A", "val"))
	assert.Equal(t, table.String("y2"), m.Cell(1, "B", "val"))
	assert.True(t, m.Cell(2, "A", "val").IsMissing())
	assert.Equal(t, table.String("z"), m.Cell(2, "B", "val"))
}

func TestMergeJoinsOnNormalizedKey(t *testing.T) {
	a := projectedSource(t, "A", "id", nil,
		[]table.Value{table.String("12,345.00")})
	b := projectedSource(t, "B", "id", nil,
		[]table.Value{table.String("12345.00")})

	m := Merge([]SourceTable{a, b})

	require.Equal(t, 1, m.NumRows())
	assert.Equal(t, table.String("1234500"), m.Keys()[0])
	assert.Equal(t, table.String("12,345.00"), m.Cell(0, "A", "id"))
	assert.Equal(t, table.String("12345.00"), m.Cell(0, "B", "id"))
}

func TestMergeDuplicateKeysWithinSource(t *testing.T) {
	a := projectedSource(t, "A", "id", []string{"val"},
		[]table.Value{table.String("1"), table.String("first")},
		[]table.Value{table.String("1"), table.String("second")})

	m := Merge([]SourceTable{a})

	require.Equal(t, 1, m.NumRows())
	assert.Equal(t, table.String("first"), m.Cell(0, "A", "val"))
}

func TestMergeMissingKeysShareOneRow(t *testing.T) {
	a := projectedSource(t, "A", "id", nil,
		[]table.Value{table.Missing},
		[]table.Value{table.Missing})
	b := projectedSource(t, "B", "id", nil,
		[]table.Value{table.Missing})

	m := Merge([]SourceTable{a, b})

	require.Equal(t, 1, m.NumRows())
	assert.True(t, m.Keys()[0].IsMissing())
}

func TestMergeUnknownColumnRef(t *testing.T) {
	a := projectedSource(t, "A", "id", nil, []table.Value{table.String("1")})

	m := Merge([]SourceTable{a})

	assert.True(t, m.Cell(0, "A", "nope").IsMissing())
	assert.True(t, m.Cell(0, "B", "id").IsMissing())
}
