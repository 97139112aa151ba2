package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#f4f4f5"
	colorMuted    lipgloss.Color = "#a1a1aa"
	colorBorder   lipgloss.Color = "#3f3f46"
	colorMantle   lipgloss.Color = "#18181b"
	colorSurface0 lipgloss.Color = "#27272a"
	colorAccent   lipgloss.Color = "#f97316"
	colorInfo     lipgloss.Color = "#60a5fa"
	colorSuccess  lipgloss.Color = "#4ade80"
	colorWarning  lipgloss.Color = "#facc15"
	colorError    lipgloss.Color = "#f87171"
	colorTabOff   lipgloss.Color = "#71717a"
)
