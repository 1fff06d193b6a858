package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name     string
	Primary  lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Location lipgloss.Style
	Bold     lipgloss.Style
	Icons    ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass string
	Fail string
	Warn string
	Info string
}

// DefaultTheme returns the color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:     "default",
		Primary:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true),
		Bold:     lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Pass: "✓",
			Fail: "✗",
			Warn: "⚠",
			Info: "●",
		},
	}
}

// MonoTheme returns a theme without colors, for NO_COLOR and dumb terminals.
func MonoTheme() Theme {
	return Theme{
		Name:     "mono",
		Primary:  lipgloss.NewStyle(),
		Success:  lipgloss.NewStyle(),
		Warning:  lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
		Location: lipgloss.NewStyle(),
		Bold:     lipgloss.NewStyle(),
		Icons: ThemeIcons{
			Pass: "+",
			Fail: "x",
			Warn: "!",
			Info: "*",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return DefaultTheme()
}
