package style

import "github.com/charmbracelet/lipgloss"

// Palette of the overlay chrome.
var (
	Text    = lipgloss.Color("#f5f5f1")
	Subtext = lipgloss.Color("#b3b3b3")
	Overlay = lipgloss.Color("#6d6d6e")
	Surface = lipgloss.Color("#2f2f2f")

	AccentColor  = lipgloss.Color("#e50914")
	WarningColor = lipgloss.Color("#f5c518")
	ErrorColor   = lipgloss.Color("#ff453a")
	HiRed        = ErrorColor
	FaintColor   = Overlay

	BorderColor = Surface
)
