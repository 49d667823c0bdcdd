package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a colour scheme for the reader.
type Theme struct {
	Name string

	// Text colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	// UI element colors
	Border       lipgloss.Color
	BorderActive lipgloss.Color
	Background   lipgloss.Color

	// Marks
	WordMark  lipgloss.Color
	VerseMark lipgloss.Color

	// Pens cycles through drawing colours, "#rrggbb".
	Pens []string
}

var (
	CatppuccinMocha = Theme{
		Name:         "Catppuccin Mocha",
		Primary:      lipgloss.Color("#cdd6f4"),
		Secondary:    lipgloss.Color("#a6adc8"),
		Accent:       lipgloss.Color("#f5c2e7"),
		Muted:        lipgloss.Color("#6c7086"),
		Error:        lipgloss.Color("#f38ba8"),
		Success:      lipgloss.Color("#a6e3a1"),
		Border:       lipgloss.Color("#45475a"),
		BorderActive: lipgloss.Color("#89b4fa"),
		Background:   lipgloss.Color("#313244"),
		WordMark:     lipgloss.Color("#f9e2af"),
		VerseMark:    lipgloss.Color("#45475a"),
		Pens:         []string{"#f38ba8", "#89b4fa", "#a6e3a1", "#f9e2af", "#cba6f7"},
	}

	CatppuccinLatte = Theme{
		Name:         "Catppuccin Latte",
		Primary:      lipgloss.Color("#4c4f69"),
		Secondary:    lipgloss.Color("#5c5f77"),
		Accent:       lipgloss.Color("#ea76cb"),
		Muted:        lipgloss.Color("#9ca0b0"),
		Error:        lipgloss.Color("#d20f39"),
		Success:      lipgloss.Color("#40a02b"),
		Border:       lipgloss.Color("#dce0e8"),
		BorderActive: lipgloss.Color("#1e66f5"),
		Background:   lipgloss.Color("#e6e9ef"),
		WordMark:     lipgloss.Color("#df8e1d"),
		VerseMark:    lipgloss.Color("#ccd0da"),
		Pens:         []string{"#d20f39", "#1e66f5", "#40a02b", "#df8e1d", "#8839ef"},
	}

	Dracula = Theme{
		Name:         "Dracula",
		Primary:      lipgloss.Color("#f8f8f2"),
		Secondary:    lipgloss.Color("#6272a4"),
		Accent:       lipgloss.Color("#ff79c6"),
		Muted:        lipgloss.Color("#6272a4"),
		Error:        lipgloss.Color("#ff5555"),
		Success:      lipgloss.Color("#50fa7b"),
		Border:       lipgloss.Color("#44475a"),
		BorderActive: lipgloss.Color("#bd93f9"),
		Background:   lipgloss.Color("#282a36"),
		WordMark:     lipgloss.Color("#f1fa8c"),
		VerseMark:    lipgloss.Color("#44475a"),
		Pens:         []string{"#ff5555", "#8be9fd", "#50fa7b", "#f1fa8c", "#bd93f9"},
	}

	RosePineMoon = Theme{
		Name:         "Rosé Pine Moon",
		Primary:      lipgloss.Color("#e0def4"),
		Secondary:    lipgloss.Color("#908caa"),
		Accent:       lipgloss.Color("#ebbcba"),
		Muted:        lipgloss.Color("#6e6a86"),
		Error:        lipgloss.Color("#eb6f92"),
		Success:      lipgloss.Color("#9ccfd8"),
		Border:       lipgloss.Color("#403d52"),
		BorderActive: lipgloss.Color("#c4a7e7"),
		Background:   lipgloss.Color("#2a273f"),
		WordMark:     lipgloss.Color("#f6c177"),
		VerseMark:    lipgloss.Color("#393552"),
		Pens:         []string{"#eb6f92", "#3e8fb0", "#9ccfd8", "#f6c177", "#c4a7e7"},
	}

	SolarizedDark = Theme{
		Name:         "Solarized Dark",
		Primary:      lipgloss.Color("#839496"),
		Secondary:    lipgloss.Color("#586e75"),
		Accent:       lipgloss.Color("#d33682"),
		Muted:        lipgloss.Color("#586e75"),
		Error:        lipgloss.Color("#dc322f"),
		Success:      lipgloss.Color("#859900"),
		Border:       lipgloss.Color("#073642"),
		BorderActive: lipgloss.Color("#268bd2"),
		Background:   lipgloss.Color("#002b36"),
		WordMark:     lipgloss.Color("#b58900"),
		VerseMark:    lipgloss.Color("#073642"),
		Pens:         []string{"#dc322f", "#268bd2", "#859900", "#b58900", "#6c71c4"},
	}
)

var registry = map[string]Theme{
	"catppuccin-mocha": CatppuccinMocha,
	"catppuccin-latte": CatppuccinLatte,
	"dracula":          Dracula,
	"rosepine-moon":    RosePineMoon,
	"solarized-dark":   SolarizedDark,
}

// Names lists the config keys of all themes, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Get returns a theme by config key, defaulting to Catppuccin Mocha.
func Get(name string) (Theme, bool) {
	if t, ok := registry[name]; ok {
		return t, true
	}
	return CatppuccinMocha, false
}
