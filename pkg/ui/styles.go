package ui

import "github.com/charmbracelet/lipgloss"

// Color palette, Dracula-inspired.
var (
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgDark      = lipgloss.Color("#1E1F29")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")

	// Gender accents on cards.
	ColorMale    = lipgloss.Color("#8BE9FD")
	ColorFemale  = lipgloss.Color("#FF79C6")
	ColorUnknown = lipgloss.Color("#6272A4")
)

// Theme bundles the adaptive styles the views render with.
type Theme struct {
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	FocalCard    lipgloss.Style

	Header   lipgloss.Style
	Stats    lipgloss.Style
	Footer   lipgloss.Style
	Status   lipgloss.Style
	ErrorBox lipgloss.Style

	Panel        lipgloss.Style
	FocusedPanel lipgloss.Style
}

// DarkTheme is the default theme.
func DarkTheme() Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBgHighlight).
		Padding(0, 1)

	return Theme{
		Card: card,
		SelectedCard: card.
			BorderForeground(ColorInfo),
		FocalCard: card.
			BorderForeground(ColorPrimary).
			Bold(true),

		Header: lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Stats:  lipgloss.NewStyle().Foreground(ColorMuted),
		Footer: lipgloss.NewStyle().Foreground(ColorMuted),
		Status: lipgloss.NewStyle().Foreground(ColorSuccess),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDanger).
			Foreground(ColorDanger).
			Padding(1, 2),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBgHighlight).
			Padding(0, 1),
		FocusedPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),
	}
}

// LightTheme adjusts the accents for light terminals; the layout styles
// are shared with the dark theme.
func LightTheme() Theme {
	t := DarkTheme()
	t.Header = t.Header.Foreground(lipgloss.Color("#7D56C2"))
	t.Stats = t.Stats.Foreground(lipgloss.Color("#555555"))
	t.Footer = t.Footer.Foreground(lipgloss.Color("#555555"))
	return t
}

// ThemeByName resolves a config theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// GenderColor returns the accent color for a gender glyph.
func GenderColor(glyph string) lipgloss.Color {
	switch glyph {
	case "♂":
		return ColorMale
	case "♀":
		return ColorFemale
	}
	return ColorUnknown
}
