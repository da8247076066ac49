package models

// ============================================================================
// STORAGE CONSTANTS
// ============================================================================

// StorageKey is the single slot the whole AppData document is persisted under
const StorageKey = "kanbanned-data"

// CurrentVersion is the version written into freshly created data sets.
// Loaded data keeps whatever version it was stored with.
const CurrentVersion = 1

// ============================================================================
// NAMING DEFAULTS
// ============================================================================

const (
	// DefaultColumnName is the name given to columns created by AddColumn
	DefaultColumnName = "New Column"

	// NewBoardName is the name given to boards created from the template
	NewBoardName = "New Board"

	// UntitledCard is the fallback card title
	UntitledCard = "Untitled"

	// UntitledColumn is the fallback column name
	UntitledColumn = "Untitled Column"

	// UntitledBoard is the fallback board name
	UntitledBoard = "Untitled Board"
)

// ============================================================================
// ID PREFIXES
// ============================================================================

// Prefixes handed to the id generator so ids stay readable in logs and storage
const (
	BoardIDPrefix  = "board"
	ColumnIDPrefix = "col"
	CardIDPrefix   = "card"
	TagIDPrefix    = "tag"
)

// ============================================================================
// TAG PALETTE
// ============================================================================

// TagPalette is the fixed set of colors assigned round-robin to new tags,
// indexed by the number of tags the board already has.
var TagPalette = []string{
	"#EF4444", // red
	"#3B82F6", // blue
	"#22C55E", // green
	"#F59E0B", // amber
	"#A855F7", // purple
	"#EC4899", // pink
	"#14B8A6", // teal
	"#F97316", // orange
}

// PaletteColor returns the palette color for the n-th tag on a board
func PaletteColor(n int) string {
	if n < 0 {
		n = 0
	}
	return TagPalette[n%len(TagPalette)]
}
