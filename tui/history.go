// Package tui provides a Bubble Tea terminal UI for the game engine.
package tui

// History remembers submitted commands so Up/Down can recall them. A
// bounded slice with a cursor: cursor -1 means the player is typing fresh
// input, anything else is an index into cmds.
type History struct {
	cmds   []string
	limit  int
	cursor int
}

// NewHistory creates a history buffer that keeps at most limit commands.
func NewHistory(limit int) *History {
	return &History{
		cmds:   make([]string, 0, limit),
		limit:  limit,
		cursor: -1,
	}
}

// Push records a submitted command. Repeating the previous command adds
// nothing; once the limit is hit the oldest command falls off.
func (h *History) Push(cmd string) {
	if n := len(h.cmds); n > 0 && h.cmds[n-1] == cmd {
		return
	}
	h.cmds = append(h.cmds, cmd)
	if len(h.cmds) > h.limit {
		h.cmds = h.cmds[1:]
	}
}

// Prev steps back toward older commands and returns the one under the
// cursor. At the oldest command it stays put. Returns ("", false) only
// when the history is empty.
func (h *History) Prev() (string, bool) {
	if len(h.cmds) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.cmds) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.cmds[h.cursor], true
}

// Next steps forward toward newer commands. Stepping past the newest
// command returns ("", false) and leaves the player on fresh input.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.cmds) {
		h.cursor = -1
		return "", false
	}
	return h.cmds[h.cursor], true
}

// ResetCursor drops back to fresh input without touching the stored
// commands.
func (h *History) ResetCursor() {
	h.cursor = -1
}
