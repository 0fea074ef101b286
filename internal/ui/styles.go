package ui

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	colorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	colorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	colorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	colorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// headerStyle is used for the application title bar.
var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorWhite).
	Background(colorBlue).
	Padding(0, 1)

// summaryStyle wraps the briefing text area.
var summaryStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorBorder)

// statusStyle is used for the last-updated line under the briefing.
var statusStyle = lipgloss.NewStyle().
	Foreground(colorGray)

// helpStyle is used for keyboard shortcut hints.
var helpStyle = lipgloss.NewStyle().
	Foreground(colorGray).
	Italic(true)

// slotStyle marks which history slot is on screen.
var slotStyle = lipgloss.NewStyle().
	Foreground(colorBlue).
	Bold(true)
