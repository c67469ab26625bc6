package tui

import (
	"strings"
	"testing"
	"time"
)

func TestToastLifecycle(t *testing.T) {
	m := newToastModel(3 * time.Second)
	m, cmd := m.push("Copied to clipboard!", toastSuccess)
	if cmd == nil || len(m.items) != 1 || m.items[0].phase != toastEntering {
		t.Fatalf("after push: %+v", m.items)
	}
	id := m.items[0].id

	start := time.Now()
	msg := cmd()
	if time.Since(start) < toastEnterDelay {
		t.Error("enter tick fired early")
	}
	if pm, ok := msg.(toastPhaseMsg); !ok || pm.id != id || pm.phase != toastShown {
		t.Fatalf("enter tick = %#v", msg)
	}

	m, cmd = m.Update(msg)
	if m.items[0].phase != toastShown || cmd == nil {
		t.Fatalf("shown phase not reached: %+v", m.items[0])
	}

	m, cmd = m.Update(toastPhaseMsg{id: id, phase: toastLeaving})
	if m.items[0].phase != toastLeaving || cmd == nil {
		t.Fatalf("leaving phase not reached: %+v", m.items[0])
	}

	m, _ = m.Update(toastRemoveMsg{id: id})
	if len(m.items) != 0 {
		t.Errorf("toast not removed: %+v", m.items)
	}
}

func TestToastsIndependent(t *testing.T) {
	m := newToastModel(time.Second)
	m, _ = m.push("first", toastSuccess)
	m, _ = m.push("second", toastError)
	if len(m.items) != 2 || m.items[0].id == m.items[1].id {
		t.Fatalf("expected two distinct toasts: %+v", m.items)
	}

	m, _ = m.Update(toastRemoveMsg{id: m.items[0].id})
	if len(m.items) != 1 || m.items[0].text != "second" {
		t.Errorf("removing first affected second: %+v", m.items)
	}

	// Messages for unknown toasts are ignored.
	second := m.items[0].id
	m, _ = m.Update(toastRemoveMsg{id: second})
	m, cmd := m.Update(toastPhaseMsg{id: second, phase: toastLeaving})
	if cmd != nil {
		t.Error("phase change for a removed toast scheduled a timer")
	}
	if len(m.items) != 0 {
		t.Errorf("expected empty stack, got %+v", m.items)
	}
}

func TestToastView(t *testing.T) {
	m := newToastModel(time.Second)
	if m.View(80) != "" {
		t.Error("empty toast stack should render nothing")
	}
	m, _ = m.push("Failed to copy", toastError)
	m, _ = m.Update(toastPhaseMsg{id: m.items[0].id, phase: toastShown})
	if !strings.Contains(m.View(80), "Failed to copy") {
		t.Errorf("view = %q", m.View(80))
	}
}
