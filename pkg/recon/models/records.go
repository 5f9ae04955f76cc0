// Package models defines the configuration and report record types exchanged
// between the reconciliation engine and its collaborators.
package models

// Source identifies one data origin: a loose workbook/CSV file or a combined
// folder bundle. The discovery order of sources is significant and is carried
// as a slice everywhere.
type Source struct {
	// Label is the stable identifier (file stem or folder name).
	Label string
	// Path is the file to load sheets from.
	Path string
}

// SheetConfig is the comparison definition of one logical sheet.
type SheetConfig struct {
	// Sheet is the logical sheet name, shared across all sources.
	Sheet string
	// Columns are the comparison column names in configured order.
	Columns []string
	// KeyColumn is the designated key column. It never participates as a
	// comparison column.
	KeyColumn string
}

// DuplicateRecord reports one normalized key occurring more than once within
// a single source's sheet data.
type DuplicateRecord struct {
	Sheet  string
	Bron   string
	Key    string
	Aantal int
}

// SummaryRecord is the per-sheet match/mismatch summary.
type SummaryRecord struct {
	Sheet      string
	Totaal     int
	Matches    int
	Mismatches int
}

// DashboardRecord holds per (sheet, source) table and key-quality statistics.
type DashboardRecord struct {
	Sheet         string
	Bron          string
	Rijen         int
	Kolommen      int
	KeyKolom      string
	KeyNonNull    int
	KeyNull       int
	KeyUniek      int
	KeyDuplicaten int
}

// LogRecord is one captured log line, written to the Logs report sheet.
type LogRecord struct {
	Tijd    string
	Niveau  string
	Bericht string
}
