package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleBattle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleGold = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	styleQuest = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	styleDeath = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleLore = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// SetPlain strips colors from every style, for terminals that want
// monochrome output.
func SetPlain() {
	plain := lipgloss.NewStyle()
	styleInputPrompt = plain
	stylePlayerInput = plain
	styleNarrative = plain
	styleBattle = plain
	styleGold = plain
	styleQuest = plain
	styleDeath = plain
	styleLore = plain
	styleSystem = plain
	styleError = plain
	styleStatusBar = lipgloss.NewStyle().Reverse(true)
}

// lineKind classifies an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindBattle
	kindGold
	kindQuest
	kindDeath
	kindLore
	kindError
)

// classifyLine decides how a game output line should be styled, keying
// off the engine's message phrasing.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "You died"):
		return kindDeath
	case strings.HasPrefix(line, "Quest completed:"):
		return kindQuest
	case strings.Contains(line, "hits you"),
		strings.Contains(line, "You hit"),
		strings.Contains(line, "appears at"),
		strings.Contains(line, "You defeated"),
		strings.Contains(line, "fireball"):
		return kindBattle
	case strings.Contains(line, "gold"):
		return kindGold
	case strings.Contains(line, "echoes in your mind"):
		return kindLore
	default:
		return kindNarrative
	}
}

func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindBattle:
		return styleBattle.Render(line)
	case kindGold:
		return styleGold.Render(line)
	case kindQuest:
		return styleQuest.Render(line)
	case kindDeath:
		return styleDeath.Render(line)
	case kindLore:
		return styleLore.Render(line)
	case kindError:
		return styleError.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
