package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueMissing(t *testing.T) {
	assert.True(t, Missing.IsMissing())
	assert.False(t, String("").IsMissing())
	assert.Equal(t, "", Missing.Get())
	assert.Equal(t, "x", String("x").Get())
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal strings", String("a"), String("a"), true},
		{"different strings", String("a"), String("b"), false},
		{"empty equals empty", String(""), String(""), true},
		{"missing never equals missing", Missing, Missing, false},
		{"missing never equals present", Missing, String("a"), false},
		{"present never equals missing", String("a"), Missing, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestTableAppendAndCell(t *testing.T) {
	tbl := New("a", "b")
	require.NoError(t, tbl.AppendRow(String("1"), Missing))

	assert.Equal(t, 1, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
	assert.Equal(t, String("1"), tbl.Cell(0, "a"))
	assert.True(t, tbl.Cell(0, "b").IsMissing())
	assert.True(t, tbl.Cell(0, "nope").IsMissing())

	assert.Error(t, tbl.AppendRow(String("only one")))
}

func TestTableColumn(t *testing.T) {
	tbl := New("a")
	require.NoError(t, tbl.AppendRow(String("1")))
	require.NoError(t, tbl.AppendRow(String("2")))

	assert.Equal(t, []Value{String("1"), String("2")}, tbl.Column("a"))
	assert.Nil(t, tbl.Column("missing"))
}

func TestTableSelect(t *testing.T) {
	tbl := New("a", "b", "c")
	require.NoError(t, tbl.AppendRow(String("1"), String("2"), String("3")))

	sel, err := tbl.Select("c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sel.Columns())
	assert.Equal(t, String("3"), sel.Cell(0, "c"))
	assert.Equal(t, String("1"), sel.Cell(0, "a"))

	_, err = tbl.Select("a", "nope")
	assert.Error(t, err)
}

func TestTableWithColumn(t *testing.T) {
	tbl := New("a")
	require.NoError(t, tbl.AppendRow(String("1")))

	require.NoError(t, tbl.WithColumn("b", []Value{String("x")}))
	assert.Equal(t, []string{"a", "b"}, tbl.Columns())
	assert.Equal(t, String("x"), tbl.Cell(0, "b"))

	assert.Error(t, tbl.WithColumn("b", []Value{String("dup")}))
	assert.Error(t, tbl.WithColumn("c", []Value{}))
}

func TestTableSetColumn(t *testing.T) {
	tbl := New("a")
	require.NoError(t, tbl.AppendRow(String("1")))

	require.NoError(t, tbl.SetColumn("a", []Value{String("2")}))
	assert.Equal(t, String("2"), tbl.Cell(0, "a"))
	assert.Error(t, tbl.SetColumn("nope", []Value{String("2")}))
}

func TestTableRename(t *testing.T) {
	tbl := New("a", "b")
	tbl.Rename("a", "z")

	assert.Equal(t, []string{"z", "b"}, tbl.Columns())
	assert.False(t, tbl.HasColumn("a"))
	assert.True(t, tbl.HasColumn("z"))

	// Renaming an unknown column is a no-op.
	tbl.Rename("nope", "x")
	assert.Equal(t, []string{"z", "b"}, tbl.Columns())
}

func TestTableClone(t *testing.T) {
	tbl := New("a")
	require.NoError(t, tbl.AppendRow(String("1")))

	clone := tbl.Clone()
	require.NoError(t, clone.SetColumn("a", []Value{String("changed")}))

	assert.Equal(t, String("1"), tbl.Cell(0, "a"))
	assert.Equal(t, String("changed"), clone.Cell(0, "a"))
}
