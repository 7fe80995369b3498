// Package tui provides a Bubble Tea terminal UI for playing dirquest
// interactively instead of one command at a time.
package tui

// history is a bounded command log with cursor navigation for the
// up/down keys.
type history struct {
	entries []string
	max     int
	cursor  int // -1 means not navigating
}

func newHistory(max int) *history {
	return &history{max: max, cursor: -1}
}

// push records a command, skipping consecutive duplicates.
func (h *history) push(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
}

// prev steps towards older entries.
func (h *history) prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// next steps towards newer entries; stepping past the newest returns to
// fresh input.
func (h *history) next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

func (h *history) resetCursor() {
	h.cursor = -1
}
