package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headers
	colorGreen  = lipgloss.Color("35")  // Green - inlets
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - outlets
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleHeader for the matrix header row and stream name column.
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleOutlet for -1 cells (stream leaves the unit).
	styleOutlet = lipgloss.NewStyle().Foreground(colorRed)

	// styleInlet for 1 cells (stream enters the unit).
	styleInlet = lipgloss.NewStyle().Foreground(colorGreen)

	// styleZero for 0 cells.
	styleZero = lipgloss.NewStyle().Foreground(colorDim)

	// styleValue for stream names.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleWarning for warning lines under the table.
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// styleCell picks the style for a matrix cell value.
func styleCell(v string) lipgloss.Style {
	switch v {
	case "-1":
		return styleOutlet
	case "1":
		return styleInlet
	case "0":
		return styleZero
	}
	return styleValue
}
