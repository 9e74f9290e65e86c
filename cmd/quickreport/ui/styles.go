// Package ui provides the visual styling and page components for the
// quickreport interactive interface.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light mode colors (default)
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#1d4ed8")
	LightAccent     = lipgloss.Color("#0ea5e9")
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#dce0e5")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#141d2b")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#60a5fa")
	DarkAccent     = lipgloss.Color("#38bdf8")
	DarkMuted      = lipgloss.Color("#64748b")
	DarkBorder     = lipgloss.Color("#2a3850")

	// Semantic colors, shared by both modes
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme picks a theme from the terminal background when the
// config does not force one.
func DetectTheme() Theme {
	colorTerm := os.Getenv("COLORFGBG")
	if colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	return LightTheme()
}

// Styles bundles the lipgloss styles shared by the pages.
type Styles struct {
	Header      lipgloss.Style
	Title       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Accent      lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	StatusBar   lipgloss.Style
	MarketOn    lipgloss.Style
	MarketOff   lipgloss.Style
	FlagOn      lipgloss.Style
	FlagOff     lipgloss.Style
	Panel       lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground),
		Label:       lipgloss.NewStyle().Foreground(theme.Muted),
		Value:       lipgloss.NewStyle().Foreground(theme.Foreground),
		Accent:      lipgloss.NewStyle().Foreground(theme.Accent),
		Muted:       lipgloss.NewStyle().Foreground(theme.Muted),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(Destructive),
		Success:     lipgloss.NewStyle().Bold(true).Foreground(Success),
		Warning:     lipgloss.NewStyle().Foreground(Warning),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Underline(true),
		InactiveTab: lipgloss.NewStyle().Foreground(theme.Muted),
		StatusBar:   lipgloss.NewStyle().Foreground(theme.Muted),
		MarketOn:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		MarketOff:   lipgloss.NewStyle().Foreground(theme.Muted),
		FlagOn:      lipgloss.NewStyle().Bold(true).Foreground(Destructive),
		FlagOff:     lipgloss.NewStyle().Foreground(theme.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles for the light theme.
func DefaultStyles() Styles {
	return NewStyles(LightTheme())
}
