package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles used outside the playfield.
type Theme struct {
	// Status bar styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style
	HUDWin       lipgloss.Style
	HUDLoss      lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDWin:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		HUDLoss:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.HUDTitle = lipgloss.NewStyle().Bold(true)
	theme.HUDWin = lipgloss.NewStyle().Bold(true)
	theme.HUDLoss = lipgloss.NewStyle().Bold(true).Underline(true)
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	return theme
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
