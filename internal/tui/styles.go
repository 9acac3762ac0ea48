package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/notty/internal/deck"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	HandInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ActionsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	PlayerInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	CurrentPlayerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575")).
				Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// cardStyles colours each card by its own colour
var cardStyles = map[deck.Colour]lipgloss.Style{
	deck.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	deck.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5DADEC")).Bold(true),
	deck.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("#4CD137")).Bold(true),
	deck.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#FBC531")).Bold(true),
}
