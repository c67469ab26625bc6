package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Toast animation delays around the visible period.
const (
	toastEnterDelay = 10 * time.Millisecond
	toastLeaveDelay = 300 * time.Millisecond
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

type toastPhase int

const (
	toastEntering toastPhase = iota
	toastShown
	toastLeaving
)

type toast struct {
	id    uuid.UUID
	text  string
	kind  toastKind
	phase toastPhase
}

// toastPhaseMsg advances one toast to the given phase.
type toastPhaseMsg struct {
	id    uuid.UUID
	phase toastPhase
}

// toastRemoveMsg drops a toast once it has left.
type toastRemoveMsg struct {
	id uuid.UUID
}

// toastModel is a stack of independent notifications. Each toast runs its
// own timers, keyed by id, so several can be visible at once.
type toastModel struct {
	items    []toast
	duration time.Duration
}

func newToastModel(duration time.Duration) toastModel {
	return toastModel{duration: duration}
}

func (m toastModel) push(text string, kind toastKind) (toastModel, tea.Cmd) {
	id := uuid.New()
	m.items = append(append([]toast(nil), m.items...), toast{id: id, text: text, kind: kind})
	return m, tea.Tick(toastEnterDelay, func(time.Time) tea.Msg {
		return toastPhaseMsg{id: id, phase: toastShown}
	})
}

func (m toastModel) Update(msg tea.Msg) (toastModel, tea.Cmd) {
	switch msg := msg.(type) {
	case toastPhaseMsg:
		i := m.index(msg.id)
		if i < 0 {
			return m, nil
		}
		m.items = append([]toast(nil), m.items...)
		m.items[i].phase = msg.phase
		id := msg.id
		switch msg.phase {
		case toastShown:
			return m, tea.Tick(m.duration, func(time.Time) tea.Msg {
				return toastPhaseMsg{id: id, phase: toastLeaving}
			})
		case toastLeaving:
			return m, tea.Tick(toastLeaveDelay, func(time.Time) tea.Msg {
				return toastRemoveMsg{id: id}
			})
		}

	case toastRemoveMsg:
		i := m.index(msg.id)
		if i < 0 {
			return m, nil
		}
		items := make([]toast, 0, len(m.items)-1)
		items = append(items, m.items[:i]...)
		m.items = append(items, m.items[i+1:]...)
	}
	return m, nil
}

func (m toastModel) index(id uuid.UUID) int {
	for i, t := range m.items {
		if t.id == id {
			return i
		}
	}
	return -1
}

// View renders visible toasts right-aligned, newest last. Empty when none.
func (m toastModel) View(width int) string {
	if len(m.items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.items))
	for _, t := range m.items {
		style := toastSuccessStyle
		if t.kind == toastError {
			style = toastErrorStyle
		}
		if t.phase != toastShown {
			style = toastFadeStyle
		}
		rendered := style.Render(singleLine(t.text))
		pad := width - lipgloss.Width(rendered) - 1
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, strings.Repeat(" ", pad)+rendered)
	}
	return strings.Join(lines, "\n")
}
