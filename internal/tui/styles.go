// Package tui: Lipgloss style constants for the "Ecliptic Dark" theme.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all theme-aware Lipgloss styles.
type Styles struct {
	// Colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Danger     lipgloss.Color
	Muted      lipgloss.Color
	Text       lipgloss.Color

	// Component styles
	Header     lipgloss.Style
	PanelTitle lipgloss.Style
	Sidebar    lipgloss.Style
	BodyRow    lipgloss.Style
	BodySel    lipgloss.Style
	Sun        lipgloss.Style
	Planet     lipgloss.Style
	Orbit      lipgloss.Style
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	StatusErr  lipgloss.Style
}

// newStyles returns the "Ecliptic Dark" theme styles.
func newStyles() Styles {
	bg := lipgloss.Color("#0D0F18")
	surface := lipgloss.Color("#171A2B")
	primary := lipgloss.Color("#8CB8DE") // ecliptic blue
	accent := lipgloss.Color("#E0C156")  // solar gold
	danger := lipgloss.Color("#F56565")
	muted := lipgloss.Color("#4A5568")
	text := lipgloss.Color("#E2E8F0")

	return Styles{
		Background: bg, Surface: surface, Primary: primary,
		Accent: accent, Danger: danger, Muted: muted, Text: text,

		Header: lipgloss.NewStyle().
			Background(primary).Foreground(bg).
			Bold(true).Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(primary).Bold(true).
			BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).
			BorderForeground(muted).Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			Background(surface).Foreground(text).
			BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).
			BorderForeground(muted).
			Padding(1, 1),

		BodyRow: lipgloss.NewStyle().
			Foreground(text).PaddingLeft(1),

		BodySel: lipgloss.NewStyle().
			Foreground(accent).Bold(true),

		Sun:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Planet: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Orbit:  lipgloss.NewStyle().Foreground(muted),

		Footer: lipgloss.NewStyle().
			Background(surface).Foreground(muted).
			Padding(0, 1),

		FooterKey: lipgloss.NewStyle().
			Foreground(primary).Bold(true),

		StatusErr: lipgloss.NewStyle().Foreground(danger),
	}
}
