package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	loop   bool
	rewind bool
}

// NewHelpRenderer creates a new help renderer. The edge behaviour line depends
// on how the slider was configured.
func NewHelpRenderer(loop, rewind bool) *HelpRenderer {
	return &HelpRenderer{loop: loop, rewind: rewind}
}

type helpEntry struct {
	key  string
	desc string
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("ezslider Help"))
	help.WriteString("\n")

	sections := []struct {
		name    string
		entries []helpEntry
	}{
		{"Navigation", []helpEntry{
			{"←/h", "Previous slide"},
			{"→/l, Space", "Next slide"},
			{"g/Home", "First slide"},
			{"G/End", "Last slide"},
			{"1-9", "Jump to dot"},
		}},
		{"Mouse", []helpEntry{
			{"click", "Press a dot or a nav button"},
			{"drag", "Pull the slides left or right past the threshold"},
			{"wheel", "Previous/next slide"},
			{"Esc", "Cancel an active drag"},
		}},
		{"Other", []helpEntry{
			{"o/Enter", "Open the current slide in the pager"},
			{"?", "Toggle key hints"},
			{"H", "Show this help in the pager"},
			{"q", "Quit"},
		}},
	}

	for _, section := range sections {
		help.WriteString(sectionStyle.Render(section.name))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(e.key), descStyle.Render(e.desc)))
		}
	}

	edgeStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString("\n")
	help.WriteString(edgeStyle.Render("  " + r.edgeBehaviour()))

	return help.String()
}

func (r *HelpRenderer) edgeBehaviour() string {
	switch {
	case r.loop:
		return "Edges: looping, the last slide wraps to the first"
	case r.rewind:
		return "Edges: rewind, moving past an end jumps to the other end"
	default:
		return "Edges: clamped, the slider stops at both ends"
	}
}
