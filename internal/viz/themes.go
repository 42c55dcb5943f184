package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the board and the source panel.
type Theme struct {
	Name     string
	Element  lipgloss.Color
	Selected lipgloss.Color
	Text     lipgloss.Color
	Index    lipgloss.Color
	Pointer  lipgloss.Color
	Source   lipgloss.Color
	Active   lipgloss.Color
	Notice   lipgloss.Color
	Muted    lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Element:  lipgloss.Color("#00a8cc"),
		Selected: lipgloss.Color("#ff00ff"),
		Text:     lipgloss.Color("#ffffff"),
		Index:    lipgloss.Color("#666666"),
		Pointer:  lipgloss.Color("#ffff00"),
		Source:   lipgloss.Color("#888899"),
		Active:   lipgloss.Color("#00ffff"),
		Notice:   lipgloss.Color("#ff8800"),
		Muted:    lipgloss.Color("#444466"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Element:  lipgloss.Color("#005500"),
		Selected: lipgloss.Color("#88ff88"),
		Text:     lipgloss.Color("#00ff00"),
		Index:    lipgloss.Color("#005500"),
		Pointer:  lipgloss.Color("#ffff00"),
		Source:   lipgloss.Color("#00cc00"),
		Active:   lipgloss.Color("#88ff88"),
		Notice:   lipgloss.Color("#ffff00"),
		Muted:    lipgloss.Color("#003300"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Element:  lipgloss.Color("#444444"),
		Selected: lipgloss.Color("#0088ff"),
		Text:     lipgloss.Color("#ffffff"),
		Index:    lipgloss.Color("#888888"),
		Pointer:  lipgloss.Color("#ffaa00"),
		Source:   lipgloss.Color("#cccccc"),
		Active:   lipgloss.Color("#ffffff"),
		Notice:   lipgloss.Color("#ffaa00"),
		Muted:    lipgloss.Color("#555555"),
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Element:  lipgloss.Color("#8b6b8c"),
		Selected: lipgloss.Color("#ff6b6b"),
		Text:     lipgloss.Color("#fff5f5"),
		Index:    lipgloss.Color("#8b6b8c"),
		Pointer:  lipgloss.Color("#feca57"),
		Source:   lipgloss.Color("#ff9ff3"),
		Active:   lipgloss.Color("#feca57"),
		Notice:   lipgloss.Color("#ffc048"),
		Muted:    lipgloss.Color("#5a3b5c"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, the default theme if there is none.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
