package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelneuf/DWH---Test/pkg/recon/models"
	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

func TestDashboardRecords(t *testing.T) {
	a := rawSource(t, "A", []string{"id", "val"},
		[]table.Value{table.String("1"), table.String("x")},
		[]table.Value{table.String("1"), table.String("y")},
		[]table.Value{table.String("2"), table.String("z")},
		[]table.Value{table.Missing, table.String("w")})

	recs := DashboardRecords("S", []SourceTable{a}, "id")

	require.Len(t, recs, 1)
	assert.Equal(t, models.DashboardRecord{
		Sheet:         "S",
		Bron:          "A",
		Rijen:         4,
		Kolommen:      2,
		KeyKolom:      "id",
		KeyNonNull:    3,
		KeyNull:       1,
		KeyUniek:      2,
		KeyDuplicaten: 2,
	}, recs[0])
}

func TestDashboardRecordsEmptySource(t *testing.T) {
	a := rawSource(t, "A", []string{"id"})

	recs := DashboardRecords("S", []SourceTable{a}, "id")

	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].Rijen)
	assert.Equal(t, 0, recs[0].Kolommen)
	assert.Equal(t, 0, recs[0].KeyNonNull)
}

func TestDashboardRecordsMissingKeyColumn(t *testing.T) {
	a := rawSource(t, "A", []string{"val"},
		[]table.Value{table.String("x")},
		[]table.Value{table.String("y")})

	recs := DashboardRecords("S", []SourceTable{a}, "id")

	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].KeyNull)
	assert.Equal(t, 0, recs[0].KeyNonNull)
	assert.Equal(t, 0, recs[0].KeyUniek)
}

func TestDashboardRecordsRawKeyValues(t *testing.T) {
	// Statistics run over raw values, so differently formatted keys that
	// normalize alike still count as distinct here.
	a := rawSource(t, "A", []string{"id"},
		[]table.Value{table.String("12,345.00")},
		[]table.Value{table.String("12345.00")})

	recs := DashboardRecords("S", []SourceTable{a}, "id")

	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].KeyUniek)
	assert.Equal(t, 0, recs[0].KeyDuplicaten)
}

func TestDashboardRecordsSourceOrder(t *testing.T) {
	a := rawSource(t, "A", []string{"id"})
	b := rawSource(t, "B", []string{"id"})

	recs := DashboardRecords("S", []SourceTable{a, b}, "id")

	require.Len(t, recs, 2)
	assert.Equal(t, "A", recs[0].Bron)
	assert.Equal(t, "B", recs[1].Bron)
}
