// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/eleven/internal/game/card"
)

// Icon constants
const (
	WinnerIcon = "👑"
	BustIcon   = "💥"
	StandIcon  = "✋"
	TurnIcon   = "👉"
)

// Lipgloss Styles - shared across console and TUI modes
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	RedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle = lipgloss.NewStyle().MarginTop(1).Bold(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	WinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// CardStyle picks red for hearts, diamonds and the red joker, black otherwise.
func CardStyle(c card.Card) lipgloss.Style {
	if c.Suit() == card.Hearts || c.Suit() == card.Diamonds || c.Colour() == card.Red {
		return RedStyle
	}
	return BlackStyle
}
