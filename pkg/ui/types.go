package ui

// UIState represents the different views/states of the UI
type UIState int

const (
	StateRequestForm    UIState = iota // Deployment request form (default view)
	StatePresetSelector                // Saved preset selection (Ctrl+P)
	StateLogin                         // Admin key prompt (Ctrl+A)
	StateStudents                      // Admin records table
	StateTunnels                       // Server-side tunnel registry
	StateActivity                      // Activity trail (Ctrl+L)
)

// Form field indexes, in tab order
const (
	fieldName = iota
	fieldCPU
	fieldMemory
	fieldStorage
	fieldCount
)
