package models

// Column vocabulary of the reconciled output. These names are a presentation
// contract shared by the engine and the report writer.
const (
	// KeyColumn holds the normalized key, shared across all sources.
	KeyColumn = "Key"
	// MatchKeyColumn flags whether every source contains the row's key.
	MatchKeyColumn = "Match_Key"
	// BronMatchColumn is the overall per-row verdict. It stays internal to
	// the reports and is dropped from the primary output view.
	BronMatchColumn = "BronMatch"
	// PresencePrefix prefixes the per-source presence columns.
	PresencePrefix = "Aanwezig_"
	// MatchPrefix prefixes the per-column match columns.
	MatchPrefix = "Match_"
)

// Flag values used in the reconciled output.
const (
	FlagYes = "ja"
	FlagNo  = "nee"
)
