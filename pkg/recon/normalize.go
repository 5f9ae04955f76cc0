// Package recon implements the reconciliation engine: key normalization,
// multi-source outer join, presence and match derivation, duplicate detection,
// dashboard statistics and the per-sheet orchestration.
package recon

import (
	"regexp"
	"strings"

	"github.com/steelneuf/DWH---Test/pkg/recon/table"
)

// Pattern for values that look like a number written with grouping or decimal
// separators: a digit followed only by digits, '.' and ','.
var numSepPattern = regexp.MustCompile(`^[0-9][0-9.,]*$`)

// NormalizeKey canonicalizes a raw key cell into its comparable form.
//
// Missing stays missing. Otherwise the value is whitespace-trimmed and all
// interior spaces are removed; when the result looks like a separator-formatted
// number, the '.' and ',' characters are stripped so that "12,345.00",
// "12345.00" and "1234500" compare equal. No numeric parsing happens: values
// are always treated as text, so leading zeros and non-numeric strings pass
// through predictably. The function is pure and idempotent.
func NormalizeKey(v table.Value) table.Value {
	if v.IsMissing() {
		return table.Missing
	}

	s := strings.TrimSpace(v.Str)
	if s == "" {
		return table.String("")
	}

	s = strings.ReplaceAll(s, " ", "")
	if numSepPattern.MatchString(s) {
		s = strings.NewReplacer(".", "", ",", "").Replace(s)
	}
	return table.String(s)
}

// normalizeColumn applies NormalizeKey to every value of a column.
func normalizeColumn(vals []table.Value) []table.Value {
	out := make([]table.Value, len(vals))
	for i, v := range vals {
		out[i] = NormalizeKey(v)
	}
	return out
}
