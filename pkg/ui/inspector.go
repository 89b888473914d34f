// Package ui implements the interactive breakpoint inspector: a viewport
// simulator that shows, for a chosen pixel width, which directives match and
// which ones a server-side renderer would emit at all.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/mediaband/pkg/mediaquery"
)

// InspectorModel is the bubbletea model for the breakpoint inspector.
type InspectorModel struct {
	reg         *mediaquery.Registry
	renderNames []string // breakpoint names the server pre-renders for

	simWidth int // simulated viewport width in px
	input    textinput.Model

	// UI state
	width      int
	height     int
	insertMode bool // typing a width into the input
	errMsg     string
	quitting   bool
}

// NewInspector creates an inspector for the registry. renderNames is the
// fixed set of breakpoints used for the render-admission column.
func NewInspector(reg *mediaquery.Registry, renderNames []string) InspectorModel {
	ti := textinput.New()
	ti.Placeholder = "width in px"
	ti.CharLimit = 6
	ti.Width = 12

	largest, _ := reg.Width(reg.Largest())
	return InspectorModel{
		reg:         reg,
		renderNames: renderNames,
		simWidth:    largest,
		input:       ti,
	}
}

// Init implements tea.Model
func (m InspectorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.insertMode {
			return m.updateInsert(msg)
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			m.setWidth(m.simWidth - StepSmall)
		case "right", "l":
			m.setWidth(m.simWidth + StepSmall)
		case "down", "j":
			m.setWidth(m.simWidth - StepLarge)
		case "up", "k":
			m.setWidth(m.simWidth + StepLarge)
		case "pgdown":
			m.setWidth(m.simWidth - StepPage)
		case "pgup":
			m.setWidth(m.simWidth + StepPage)
		case "i", "w":
			m.insertMode = true
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		case "g":
			m.setWidth(0)
		case "tab":
			// Jump to the next breakpoint boundary at or above the width.
			m.setWidth(m.nextBoundary())
		}
	}
	return m, nil
}

// updateInsert handles keys while the width input is focused.
func (m InspectorModel) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.insertMode = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.insertMode = false
		m.input.Blur()
		value := strings.TrimSpace(m.input.Value())
		px, err := strconv.Atoi(value)
		if err != nil || px < 0 {
			m.errMsg = fmt.Sprintf("not a width: %q", value)
			return m, nil
		}
		m.setWidth(px)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *InspectorModel) setWidth(px int) {
	if px < 0 {
		px = 0
	}
	m.simWidth = px
	m.errMsg = ""
}

// nextBoundary returns the smallest breakpoint width strictly above the
// current simulated width, wrapping to 0 past the largest.
func (m InspectorModel) nextBoundary() int {
	for _, name := range m.reg.SortedNames() {
		w, _ := m.reg.Width(name)
		if w > m.simWidth {
			return w
		}
	}
	return 0
}

// owningBand returns the breakpoint whose at() band contains the simulated
// width, or "" when the width is below every breakpoint.
func (m InspectorModel) owningBand() string {
	owner := ""
	for _, name := range m.reg.SortedNames() {
		w, _ := m.reg.Width(name)
		if m.simWidth >= w {
			owner = name
		}
	}
	return owner
}

// View implements tea.Model
func (m InspectorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("mediaband inspector"))
	b.WriteString("\n\n")

	b.WriteString("viewport: ")
	b.WriteString(WidthStyle.Render(fmt.Sprintf("%dpx", m.simWidth)))
	if band := m.owningBand(); band != "" {
		b.WriteString("  band: ")
		b.WriteString(BandStyle.Render(band))
	} else {
		b.WriteString("  band: ")
		b.WriteString(MissStyle.Render("(below all breakpoints)"))
	}
	b.WriteString("\n")

	if m.insertMode {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(SkipStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(PanelStyle.Render(m.renderTable()))
	b.WriteString("\n")

	hint := "[←→] ±1px  [↑↓] ±10px  [PgUp/PgDn] ±100px  [tab] next band  [w] type width  [q] quit"
	b.WriteString(HintStyle.Render(hint))
	b.WriteString("\n")
	return b.String()
}

// renderTable renders one row per compiled query: match badge, kind, key,
// admission marker, and (on wide terminals) the compiled condition.
func (m InspectorModel) renderTable() string {
	compact := m.width > 0 && m.width < TermNarrow
	var b strings.Builder

	b.WriteString(runewidth.FillRight("", 2))
	b.WriteString(runewidth.FillRight("KIND", KindColWidth))
	b.WriteString(runewidth.FillRight("KEY", KeyColWidth))
	b.WriteString(runewidth.FillRight("SSR", 5))
	if !compact {
		b.WriteString("CONDITION")
	}
	b.WriteString("\n")

	for _, q := range m.reg.Queries() {
		d := q.Directive()

		matches, err := m.reg.MatchesWidth(d, m.simWidth)
		if err != nil {
			continue
		}
		admitted, err := m.reg.ShouldRender(d, m.renderNames)
		if err != nil {
			continue
		}

		b.WriteString(RenderMatchBadge(matches))
		b.WriteString(" ")

		style := MissStyle
		if matches {
			style = MatchStyle
		}
		b.WriteString(style.Render(runewidth.FillRight(string(q.Kind), KindColWidth)))
		b.WriteString(style.Render(runewidth.FillRight(q.Key, KeyColWidth)))

		if admitted {
			b.WriteString(runewidth.FillRight("yes", 5))
		} else {
			b.WriteString(SkipStyle.Render(runewidth.FillRight("skip", 5)))
		}
		if !compact {
			b.WriteString(MissStyle.Render(q.Conditions))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
