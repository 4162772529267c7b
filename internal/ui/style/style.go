// Package style holds the colors and icons shared by the terminal surfaces:
// the log handler, the linear renderer and the TUI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Session and event markers.
const (
	// Dot marks a live watch session.
	Dot = "●"
	// Circle marks a session that is stopped or not yet alive.
	Circle = "○"
	// Arrow leads the path of a changed file.
	Arrow = "→"
	// Cross prefixes errors and failed batches.
	Cross = "✗"
	// Warning prefixes recoverable problems.
	Warning = "!"
)
