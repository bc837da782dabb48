package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Position       lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	StatusMoving   lipgloss.Style
	Help           lipgloss.Style
	Card           lipgloss.Style
	CardCurrent    lipgloss.Style
	CardClone      lipgloss.Style
	CardTitle      lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Dot            lipgloss.Style
	DotCurrent     lipgloss.Style
	DragBar        lipgloss.Style
	DragArmed      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Position:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusMoving: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		Help:         lipgloss.NewStyle().Faint(true),
		Card:         card,
		CardCurrent:  card.BorderForeground(lipgloss.Color("99")),
		CardClone:    card.BorderForeground(lipgloss.Color("238")).Faint(true),
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("78")), // green
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Dot:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotCurrent:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		DragBar:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		DragArmed:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}
