package ui

import "github.com/charmbracelet/lipgloss"

// Palette: filament orange on slate, with the frame colors of the
// components package for borders and muted text.
var (
	colorFilament = lipgloss.Color("#e08a3c")
	colorNozzle   = lipgloss.Color("#5fa8a0")
	colorBed      = lipgloss.Color("#1b1e24")
	colorInk      = lipgloss.Color("#d7d9da")
	colorMuted    = lipgloss.Color("#9ba0bf")
	colorRule     = lipgloss.Color("#273540")
	colorOK       = lipgloss.Color("#6bbf7a")
	colorFault    = lipgloss.Color("#e06c75")
)

var (
	BannerStyle = lipgloss.NewStyle().Foreground(colorFilament).Bold(true)

	TabActiveStyle   = lipgloss.NewStyle().Foreground(colorBed).Background(colorFilament).Bold(true).Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	SelectedStyle  = lipgloss.NewStyle().Foreground(colorFilament).Bold(true)
	NormalStyle    = lipgloss.NewStyle().Foreground(colorInk)
	MutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	SuccessStyle   = lipgloss.NewStyle().Foreground(colorOK)
	ErrorStyle     = lipgloss.NewStyle().Foreground(colorFault).Bold(true)
	AccentStyle    = lipgloss.NewStyle().Foreground(colorNozzle)
	HeaderStyle    = lipgloss.NewStyle().Foreground(colorNozzle).Bold(true).PaddingBottom(1)
	FieldStyle     = lipgloss.NewStyle().Foreground(colorNozzle).Bold(true)
	MetaValueStyle = lipgloss.NewStyle().Foreground(colorInk)
)
