package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing
// current room, health, exits, inventory, and turn count.
func (m Model) renderStatusBar() string {
	snap := m.engine.Snapshot()

	exitStr := strings.Join(snap.Exits, ",")
	if exitStr == "" {
		exitStr = "none"
	}

	left := fmt.Sprintf(" %s | HP: %d/%d | Exits: %s", snap.Room, snap.Health, snap.MaxHealth, exitStr)
	right := fmt.Sprintf("T:%d ", snap.Turn)

	// Show inventory items if they fit, otherwise just count.
	if len(snap.Inventory) > 0 {
		invStr := strings.Join(snap.Inventory, ", ")
		candidate := fmt.Sprintf("Inv: %s | T:%d ", invStr, snap.Turn)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(snap.Inventory), snap.Turn)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
