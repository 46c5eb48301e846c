// Package view maps domain entities to styled terminal fragments. Every
// renderer is a pure function of an entity value and a Styles table: no
// network access, no mutation of outer state.
package view

import "github.com/charmbracelet/lipgloss"

// Semantic colors, shared across light and dark themes.
var (
	colorWarning = lipgloss.Color("#FFC107")
	colorInfo    = lipgloss.Color("#2196F3")
	colorSuccess = lipgloss.Color("#8BC34A")
	colorDanger  = lipgloss.Color("#e53935")
	colorNeutral = lipgloss.Color("#9e9e9e")
)

// Styles holds the fragment-level styles the renderers draw with.
type Styles struct {
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
	Price lipgloss.Style

	BadgeWarning lipgloss.Style
	BadgeInfo    lipgloss.Style
	BadgeSuccess lipgloss.Style
	BadgeDanger  lipgloss.Style
	BadgeNeutral lipgloss.Style

	Card lipgloss.Style
}

// DefaultStyles returns the fragment styles.
func DefaultStyles() Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#ffffff"))
	return Styles{
		Title: lipgloss.NewStyle().Bold(true),
		Body:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().Foreground(colorNeutral),
		Bold:  lipgloss.NewStyle().Bold(true),
		Price: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),

		BadgeWarning: badge.Background(colorWarning).Foreground(lipgloss.Color("#000000")),
		BadgeInfo:    badge.Background(colorInfo),
		BadgeSuccess: badge.Background(colorSuccess).Foreground(lipgloss.Color("#000000")),
		BadgeDanger:  badge.Background(colorDanger),
		BadgeNeutral: badge.Background(colorNeutral),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorNeutral).
			Padding(0, 1),
	}
}
