// Package styles provides a centralized theme and style system for the visionoptics UI.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors used throughout the application
var (
	// Primary accent color (cyan)
	ColorAccent = lipgloss.Color("44")

	// Text colors
	ColorText       = lipgloss.Color("252") // Primary text
	ColorTextMuted  = lipgloss.Color("245") // Secondary/muted text
	ColorTextBright = lipgloss.Color("15")  // Bright/highlighted text

	// Semantic colors
	ColorError   = lipgloss.Color("196")
	ColorSuccess = lipgloss.Color("42")

	// Code/syntax colors
	ColorCode   = lipgloss.Color("117")
	ColorCodeBg = lipgloss.Color("235")

	// Border colors
	ColorBorder      = lipgloss.Color("44")
	ColorBorderMuted = lipgloss.Color("238")
)

// Diagram colors
var (
	ColorLight   = lipgloss.Color("226") // Light source and lit rays
	ColorRayDim  = lipgloss.Color("241") // Rays that miss the lens
	ColorSurface = lipgloss.Color("250")
	ColorDefect  = lipgloss.Color("203")
	ColorCamera  = lipgloss.Color("75")

	// Simulated camera output
	ColorShadeLight = lipgloss.Color("254")
	ColorShadeDark  = lipgloss.Color("233")
	ColorGlow       = lipgloss.Color("229")
	ColorInk        = lipgloss.Color("236")
)

// Panel/Box styles
var (
	// BoxStyle is the default rounded box for panels
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// BoxStyleMuted is used for unfocused panels
	BoxStyleMuted = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderMuted).
			Padding(0, 1)
)

// Text styles
var (
	// TitleStyle for panel/section titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// HeadingStyle for the application header
	HeadingStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Bold(true)

	// TagStyle for small uppercase tags
	TagStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Background(lipgloss.Color("23")).
			Padding(0, 1).
			Bold(true)

	// TextStyle for normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// TextMutedStyle for secondary/helper text
	TextMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	// TextBoldStyle for emphasized text
	TextBoldStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)

// Selection and highlighting
var (
	// SelectedStyle for the active mode button
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(lipgloss.Color("31")).
			Padding(0, 1).
			Bold(true)

	// UnselectedStyle for inactive mode buttons
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
)

// List styles
var (
	SuitableStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	UnsuitableStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Feedback styles
var (
	// FooterStyle for footer/help text
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Code styles
var (
	// CodeStyle for code blocks
	CodeStyle = lipgloss.NewStyle().
		Foreground(ColorCode).
		Background(ColorCodeBg)
)

// Status bar styles
var (
	// StatusBarStyle is the default status bar style (cyan theme)
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#00838F")).
			Padding(0, 1).
			Bold(true)
)
