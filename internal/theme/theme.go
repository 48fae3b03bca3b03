package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI. The
// renderer groups cells by style pointer, so every field must stay a
// distinct pointer.
type Styles struct {
	Desktop *lipgloss.Style

	MenuBar      *lipgloss.Style
	MenuBarLabel *lipgloss.Style
	MenuBarOpen  *lipgloss.Style
	MenuBarClock *lipgloss.Style

	Window            *lipgloss.Style
	WindowActive      *lipgloss.Style
	WindowTitle       *lipgloss.Style
	WindowTitleActive *lipgloss.Style
	WindowButton      *lipgloss.Style
	WindowBody        *lipgloss.Style

	Dropdown         *lipgloss.Style
	DropdownItem     *lipgloss.Style
	DropdownSelected *lipgloss.Style
	DropdownDisabled *lipgloss.Style

	Dock          *lipgloss.Style
	DockItem      *lipgloss.Style
	DockRunning   *lipgloss.Style
	DockMinimized *lipgloss.Style

	LockClock *lipgloss.Style
	LockText  *lipgloss.Style

	Spotlight         *lipgloss.Style
	SpotlightPrompt   *lipgloss.Style
	SpotlightResult   *lipgloss.Style
	SpotlightSelected *lipgloss.Style
}

var defaultStyles = Styles{
	Desktop: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	MenuBar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	),
	MenuBarLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
	),
	MenuBarOpen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	MenuBarClock: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	Window: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	WindowActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	WindowTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	WindowTitleActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	WindowButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	),
	WindowBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Dropdown: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("235")),
	),
	DropdownItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235")),
	),
	DropdownSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	DropdownDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("235")),
	),
	Dock: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")),
	),
	DockItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	),
	DockRunning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DockMinimized: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("238")).Italic(true),
	),
	LockClock: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	LockText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Spotlight: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("235")),
	),
	SpotlightPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Background(lipgloss.Color("235")).Bold(true),
	),
	SpotlightResult: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235")),
	),
	SpotlightSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
