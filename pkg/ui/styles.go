package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired, shared with the exported band diagram
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")
)

// ══════════════════════════════════════════════════════════════════════════════
// INSPECTOR STYLES
// ══════════════════════════════════════════════════════════════════════════════

var (
	// TitleStyle renders the inspector header line.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// WidthStyle renders the simulated viewport width readout.
	WidthStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	// BandStyle renders the name of the band owning the current width.
	BandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// MatchStyle marks directives whose range contains the current width.
	MatchStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// MissStyle marks directives whose range excludes the current width.
	MissStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// SkipStyle marks directives a server renderer would not emit at all.
	SkipStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	// HintStyle renders the key hint footer.
	HintStyle = lipgloss.NewStyle().Faint(true)

	// PanelStyle wraps the directive table.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBgHighlight).
			Padding(0, 1)
)

// RenderMatchBadge returns a styled yes/no marker for a match state.
func RenderMatchBadge(matches bool) string {
	if matches {
		return MatchStyle.Render("●")
	}
	return MissStyle.Render("○")
}
