// Package theme defines color themes for the nestegg TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name        string
	Surface     lipgloss.Color // card backgrounds
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	TextDim     lipgloss.Color // hints
	TextMuted   lipgloss.Color // labels
	TextPrimary lipgloss.Color
	Accent      lipgloss.Color
	Good        lipgloss.Color // goal reached
	Bad         lipgloss.Color // goal missed, validation errors

	// Chart segments
	Principal    lipgloss.Color
	Interest     lipgloss.Color
	Initial      lipgloss.Color
	Contribution lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#403E3C"),
	BorderFocus:  lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	Good:         lipgloss.Color("#879A39"),
	Bad:          lipgloss.Color("#D14D41"),
	Principal:    lipgloss.Color("#8B7EC8"),
	Interest:     lipgloss.Color("#879A39"),
	Initial:      lipgloss.Color("#4385BE"),
	Contribution: lipgloss.Color("#D0A215"),
}

// Classic is a slate palette with violet and amber accents.
var Classic = Theme{
	Name:         "classic",
	Surface:      lipgloss.Color("#0F172A"),
	Border:       lipgloss.Color("#334155"),
	BorderFocus:  lipgloss.Color("#7C3AED"),
	TextDim:      lipgloss.Color("#475569"),
	TextMuted:    lipgloss.Color("#94A3B8"),
	TextPrimary:  lipgloss.Color("#F8FAFC"),
	Accent:       lipgloss.Color("#7C3AED"),
	Good:         lipgloss.Color("#10B981"),
	Bad:          lipgloss.Color("#EF4444"),
	Principal:    lipgloss.Color("#7C3AED"),
	Interest:     lipgloss.Color("#10B981"),
	Initial:      lipgloss.Color("#2563EB"),
	Contribution: lipgloss.Color("#F59E0B"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:         "terminal",
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	BorderFocus:  lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	Good:         lipgloss.Color("2"),
	Bad:          lipgloss.Color("1"),
	Principal:    lipgloss.Color("5"),
	Interest:     lipgloss.Color("2"),
	Initial:      lipgloss.Color("4"),
	Contribution: lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{FlexokiDark, Classic, Terminal}

// Names returns the names of all themes.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
