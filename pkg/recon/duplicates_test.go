package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/steelneuf/DWH---Test/pkg/recon/models"
	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

func TestFindDuplicates(t *testing.T) {
	a := rawSource(t, "A", []string{"id"},
		[]table.Value{table.String("1")},
		[]table.Value{table.String("1")},
		[]table.Value{table.String("2")})

	recs := FindDuplicates("S", []SourceTable{a}, "id", zap.NewNop())

	assert.Equal(t, []models.DuplicateRecord{
		{Sheet: "S", Bron: "A", Key: "1", Aantal: 2},
	}, recs)
}

func TestFindDuplicatesNormalizesKeys(t *testing.T) {
	// "12,345.00" and "12345.00" collapse to the same normalized key.
	a := rawSource(t, "A", []string{"id"},
		[]table.Value{table.String("12,345.00")},
		[]table.Value{table.String("12345.00")})

	recs := FindDuplicates("S", []SourceTable{a}, "id", zap.NewNop())

	assert.Equal(t, []models.DuplicateRecord{
		{Sheet: "S", Bron: "A", Key: "1234500", Aantal: 2},
	}, recs)
}

func TestFindDuplicatesExcludesMissingKeys(t *testing.T) {
	a := rawSource(t, "A", []string{"id"},
		[]table.Value{table.Missing},
		[]table.Value{table.Missing},
		[]table.Value{table.String("1")})

	recs := FindDuplicates("S", []SourceTable{a}, "id", zap.NewNop())

	assert.Empty(t, recs)
}

func TestFindDuplicatesPerSource(t *testing.T) {
	a := rawSource(t, "A", []string{"id"},
		[]table.Value{table.String("1")},
		[]table.Value{table.String("1")})
	b := rawSource(t, "B", []string{"id"},
		[]table.Value{table.String("1")})

	recs := FindDuplicates("S", []SourceTable{a, b}, "id", zap.NewNop())

	// The same key in two different sources is not a duplicate.
	assert.Equal(t, []models.DuplicateRecord{
		{Sheet: "S", Bron: "A", Key: "1", Aantal: 2},
	}, recs)
}

func TestFindDuplicatesFirstOccurrenceOrder(t *testing.T) {
	a := rawSource(t, "A", []string{"id"},
		[]table.Value{table.String("9")},
		[]table.Value{table.String("2")},
		[]table.Value{table.String("9")},
		[]table.Value{table.String("2")})

	recs := FindDuplicates("S", []SourceTable{a}, "id", zap.NewNop())

	assert.Equal(t, []models.DuplicateRecord{
		{Sheet: "S", Bron: "A", Key: "9", Aantal: 2},
		{Sheet: "S", Bron: "A", Key: "2", Aantal: 2},
	}, recs)
}

func TestFindDuplicatesEmptyAndKeyless(t *testing.T) {
	empty := rawSource(t, "A", []string{"id"})
	keyless := rawSource(t, "B", []string{"val"},
		[]table.Value{table.String("x")})

	recs := FindDuplicates("S", []SourceTable{empty, keyless}, "id", zap.NewNop())

	assert.Empty(t, recs)
}
