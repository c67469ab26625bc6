package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Toast text for copy outcomes.
const (
	copiedText     = "Copied to clipboard!"
	copyFailedText = "Failed to copy"
)

// copyResultMsg reports a clipboard write for one copy control.
type copyResultMsg struct {
	control string
	err     error
}

// copyRestoreMsg puts a control back after the feedback period. It only
// applies if token still matches the control's latest copy.
type copyRestoreMsg struct {
	control string
	token   int
}

// copyMarks tracks which copy controls currently show ✓.
type copyMarks struct {
	active map[string]int
	next   int
}

func newCopyMarks() copyMarks {
	return copyMarks{active: make(map[string]int)}
}

func (c copyMarks) copied(control string) bool {
	_, ok := c.active[control]
	return ok
}

// mark shows ✓ on control and returns the restore timer.
func (c copyMarks) mark(control string, feedback time.Duration) (copyMarks, tea.Cmd) {
	c.next++
	token := c.next
	active := make(map[string]int, len(c.active)+1)
	for k, v := range c.active {
		active[k] = v
	}
	active[control] = token
	c.active = active
	return c, tea.Tick(feedback, func(time.Time) tea.Msg {
		return copyRestoreMsg{control: control, token: token}
	})
}

func (c copyMarks) restore(msg copyRestoreMsg) copyMarks {
	if c.active[msg.control] != msg.token {
		return c
	}
	active := make(map[string]int, len(c.active))
	for k, v := range c.active {
		if k != msg.control {
			active[k] = v
		}
	}
	c.active = active
	return c
}

func copyText(control, text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{control: control, err: writeClipboard(text)}
	}
}

// copyLabel is the copy control as drawn on a card.
func copyLabel(copied bool, label string) string {
	if copied {
		return copiedStyle.Render("[✓]")
	}
	return helpEntry("c", label)
}
