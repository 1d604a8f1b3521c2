package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette - warm wood and paper tones
var (
	ColorOak     = lipgloss.Color("#C8963E")
	ColorWalnut  = lipgloss.Color("#7A5230")
	ColorPaper   = lipgloss.Color("#F3E9D2")
	ColorInk     = lipgloss.Color("#3D5A80")
	ColorMuted   = lipgloss.Color("#8D8D8D")
	ColorSuccess = lipgloss.Color("#6A994E")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Tag      lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style

	Box       lipgloss.Style
	BarFilled lipgloss.Style
	BarEmpty  lipgloss.Style
	BarOver   lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorOak),
	Subtitle: lipgloss.NewStyle().Foreground(ColorInk),
	Bold:     lipgloss.NewStyle().Bold(true),
	Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
	Tag:      lipgloss.NewStyle().Foreground(ColorPaper).Background(ColorWalnut).Padding(0, 1),
	Warning:  lipgloss.NewStyle().Foreground(ColorWarning),
	Error:    lipgloss.NewStyle().Foreground(ColorError),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWalnut).
		Padding(0, 1),
	BarFilled: lipgloss.NewStyle().Foreground(ColorSuccess),
	BarEmpty:  lipgloss.NewStyle().Foreground(ColorMuted),
	BarOver:   lipgloss.NewStyle().Foreground(ColorError),
}

const progressWidth = 20

// progressBar draws a fixed-width bar for fraction. Overfilled shelves get
// a full bar in the error color.
func progressBar(fraction float64) string {
	if fraction >= 1 {
		style := Styles.BarFilled
		if fraction > 1 {
			style = Styles.BarOver
		}
		return style.Render(strings.Repeat("█", progressWidth))
	}
	if fraction < 0 {
		fraction = 0
	}
	filled := int(fraction * progressWidth)
	return Styles.BarFilled.Render(strings.Repeat("█", filled)) +
		Styles.BarEmpty.Render(strings.Repeat("░", progressWidth-filled))
}
