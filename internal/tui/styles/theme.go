package styles

import (
	"wuerfel/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles defines the core UI styles
type Styles struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Summary  lipgloss.Style
	Selected lipgloss.Style
	Key      lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
}

// Theme is the fallback style set
var Theme = New(config.Theme{
	Title:   "#FFFFFF",
	Summary: "#FFD75F",
	Key:     "#5F87FF",
	Border:  "#626262",
})

// New builds the styles from configured colors
func New(t config.Theme) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 2).
			Align(lipgloss.Center),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Title)),
		Summary: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Summary)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Summary)).
			Bold(true).
			Underline(true),
		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Key)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")),
	}
}
