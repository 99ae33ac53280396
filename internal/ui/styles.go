package ui

import "github.com/charmbracelet/lipgloss"

// Shared color palette.
var (
	Red  = lipgloss.Color("9")
	Grey = lipgloss.Color("8")
	Blue = lipgloss.Color("4")
)

var (
	ErrorStyle  = lipgloss.NewStyle().Foreground(Red)
	MutedStyle  = lipgloss.NewStyle().Foreground(Grey)
	HeaderStyle = lipgloss.NewStyle().Foreground(Blue).Bold(true)
)
