package ui

// Table Column Titles
const (
	ColName      = "NAME"
	ColCPU       = "CPU"
	ColMemory    = "MEMORY"
	ColStorage   = "STORAGE"
	ColDBStatus  = "DB STATUS"
	ColLivePhase = "PHASE"

	ColTimestamp = "TIME"
	ColPath      = "PATH"
	ColOutcome   = "OUTCOME"

	ColNamespace = "NAMESPACE"
	ColURL       = "URL"
)

// Keyboard shortcuts
const (
	ShortcutExit     = "ctrl+x"
	ShortcutAdmin    = "ctrl+a"
	ShortcutPresets  = "ctrl+p"
	ShortcutActivity = "ctrl+l"
)

// Numeric Constants for Layout/Indexing
const (
	MinTableHeight  = 4  // Minimum height for tables after calculation
	TableViewOffset = 8  // Estimated non-table lines in table views for height calc
	FormInputWidth  = 30 // Width of the request form inputs
)

// Lipgloss Colors
const (
	ColorBorder     = "240"
	ColorSelectedFg = "229"
	ColorSelectedBg = "57"
	ColorTitle      = "14"  // Cyan for titles
	ColorHelp       = "245" // Grey for help text
	ColorError      = "9"   // Red for errors
	ColorSuccess    = "10"  // Green for status messages
	ColorFocused    = "205" // Pink for the focused form field
)
