package ui

// Layout breakpoints for the inspector's own terminal rendering.
// These values determine when to switch between different layout modes.
const (
	// TermNarrow is the terminal width below which the condition column is
	// dropped and only match badges are shown.
	TermNarrow = 80

	// TermWide is the terminal width above which the admission column gains
	// its explanatory text.
	TermWide = 120
)

// Column widths for the directive table (in characters).
const (
	KindColWidth = 20
	KeyColWidth  = 14

	// StepSmall/StepLarge/StepPage are the width increments for arrow and
	// page keys when stepping the simulated viewport.
	StepSmall = 1
	StepLarge = 10
	StepPage  = 100
)
