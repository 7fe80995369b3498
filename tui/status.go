package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/types"
)

// renderStatusBar produces a full-width inverted line with the hero's
// vitals on the left and the location on the right.
func (m Model) renderStatusBar() string {
	g := m.cli.Game
	p := g.Player

	left := fmt.Sprintf(" %s[%d] hp:%s %d/%d | %dg",
		p.Name(), p.Level, hpGauge(p), p.CurrentHP, p.MaxHP(), g.Gold)
	if p.Status != character.StatusNone {
		left += fmt.Sprintf(" | %s", p.Status)
	}
	if g.InCombat != nil {
		left += fmt.Sprintf(" | vs %s[%d]", g.InCombat.Name(), g.InCombat.Level)
	} else if g.InEncounter != types.NPCNone {
		left += fmt.Sprintf(" | %s", g.InEncounter)
	}

	right := g.Location.String() + " "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return styleStatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// hpGauge is a compact five-cell health bar for the status line.
func hpGauge(p *character.Character) string {
	const width = 5
	filled := 0
	if max := p.MaxHP(); max > 0 {
		filled = p.CurrentHP * width / max
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
