package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles for one color scheme. Themes are cycled at
// runtime with the t key.
type Theme struct {
	Name    string
	Logo    lipgloss.Style
	Glow    lipgloss.Style
	GlowDim lipgloss.Style
	Trail   lipgloss.Style
}

var themes = []Theme{
	{
		Name:    "classic",
		Logo:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Glow:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		GlowDim: lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		Trail:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	{
		Name:    "neon",
		Logo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true),
		Glow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff00ff")).Bold(true),
		GlowDim: lipgloss.NewStyle().Foreground(lipgloss.Color("#aa00aa")),
		Trail:   lipgloss.NewStyle().Foreground(lipgloss.Color("#004444")),
	},
	{
		Name:    "mono",
		Logo:    lipgloss.NewStyle(),
		Glow:    lipgloss.NewStyle().Reverse(true),
		GlowDim: lipgloss.NewStyle().Bold(true),
		Trail:   lipgloss.NewStyle().Faint(true),
	},
	{
		Name:    "matrix",
		Logo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff66")).Bold(true),
		Glow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ccffcc")).Bold(true),
		GlowDim: lipgloss.NewStyle().Foreground(lipgloss.Color("#44aa66")),
		Trail:   lipgloss.NewStyle().Foreground(lipgloss.Color("#003311")),
	},
}

var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	overlayHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(9)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	pausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// ThemeByName finds a theme, falling back to the first one.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// ThemeNames lists the available themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
