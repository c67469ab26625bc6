package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/client"
	"github.com/naveenspark/skillhub/pkg/domain"
)

// searchTickMsg fires when the debounce delay after a keystroke elapses.
type searchTickMsg struct {
	seq int
}

// searchResultMsg carries the outcome of the request fired for seq.
type searchResultMsg struct {
	seq    int
	search page.Search
}

// searchModel is the debounced search controller. Every edit bumps seq and
// schedules a tick carrying it; a tick or result whose seq is not the latest
// is dropped, so only the last keystroke's timer issues a request.
type searchModel struct {
	src      client.Source
	debounce time.Duration
	limit    int

	input   string
	focused bool
	open    bool // result panel visible
	seq     int
	results []domain.Skill
	cursor  int
	width   int
}

func newSearchModel(src client.Source, debounce time.Duration, limit int) searchModel {
	return searchModel{src: src, debounce: debounce, limit: limit}
}

func (m searchModel) focus() searchModel {
	m.focused = true
	return m
}

// close drops focus and hides the panel; any pending tick is invalidated.
func (m searchModel) close() searchModel {
	m.focused = false
	m.open = false
	m.seq++
	return m
}

func (m searchModel) schedule() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})
}

func (m searchModel) run(seq int, query string) tea.Cmd {
	src, limit := m.src, m.limit
	return func() tea.Msg {
		return searchResultMsg{seq: seq, search: page.RunSearch(context.Background(), src, query, limit)}
	}
}

func (m searchModel) Update(msg tea.Msg) (searchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case searchTickMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if !page.ShouldSearch(m.input) {
			m.open = false
			return m, nil
		}
		return m, m.run(msg.seq, m.input)

	case searchResultMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.search.Hidden {
			m.open = false
			return m, nil
		}
		m.results = msg.search.Results
		m.cursor = 0
		m.open = true
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m.close(), nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if !m.open || m.cursor >= len(m.results) {
				return m, nil
			}
			s := m.results[m.cursor]
			m = m.close()
			return m, openDetail(s)
		}

		edited := editRune(m.input, msg.String())
		if edited == m.input {
			return m, nil
		}
		m.input = edited
		m.seq++
		if !page.ShouldSearch(m.input) {
			m.open = false
			return m, nil
		}
		return m, m.schedule()
	}
	return m, nil
}

// inputView renders the search bar line.
func (m searchModel) inputView() string {
	prompt := inputPromptStyle.Render("/ ")
	if !m.focused && m.input == "" {
		return " " + prompt + inputPlaceholderStyle.Render("Search skills...")
	}
	text := normalStyle.Render(m.input)
	if m.focused {
		text += accentStyle.Render("█")
	}
	return " " + prompt + text
}

// panelView renders the result panel, or "" when hidden.
func (m searchModel) panelView() string {
	if !m.open {
		return ""
	}
	if len(m.results) == 0 {
		return panelStyle.Render(dimStyle.Render(page.NoSearchResults))
	}
	w := m.width - 6
	if w < 30 {
		w = 30
	}
	rows := make([]string, 0, len(m.results))
	for i, s := range m.results {
		name := truncStr(singleLine(s.Name), w/2)
		repo := metaStyle.Render(truncStr(singleLine(s.Repository), w/2))
		row := fmt.Sprintf("%s  %s  %s", selectedStyle.Render(name), repo, rankStyle(s.Rank).Render(s.RankLabel()))
		if i == m.cursor {
			row = selectedRowBg.Render(searchStyle.Render("▸ ") + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}
