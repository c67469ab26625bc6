package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/client"
	"github.com/naveenspark/skillhub/pkg/domain"
)

type listLoadedMsg struct {
	route page.Route
	list  page.List
}

// listModel is one of the Skills, Trending and Hot pages.
type listModel struct {
	src     client.Source
	route   page.Route
	loading bool
	list    page.List
	cards   cardList
	width   int
	height  int
}

func newListModel(src client.Source, route page.Route) listModel {
	return listModel{src: src, route: route, loading: true}
}

// Init mounts the loading state and fetches the page.
func (m listModel) Init() (listModel, tea.Cmd) {
	m.loading = true
	src, route := m.src, m.route
	return m, func() tea.Msg {
		l, _ := page.LoadList(context.Background(), src, route)
		return listLoadedMsg{route: route, list: l}
	}
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		if msg.route != m.route {
			return m, nil
		}
		m.loading = false
		m.list = msg.list
		m.cards = cardList{skills: msg.list.Skills}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		m.cards = m.cards.move(msg.String())
	}
	return m, nil
}

func (m listModel) selected() (domain.Skill, bool) {
	if m.loading {
		return domain.Skill{}, false
	}
	return m.cards.selected()
}

func (m listModel) scope() string { return m.route.String() }

func (m listModel) View(marks copyMarks) string {
	if m.loading {
		return renderLoading()
	}
	if m.list.IsEmpty() {
		return renderEmptyState(m.list.Empty, m.width)
	}
	return m.cards.view(m.scope(), m.list.ShowSource, marks, m.width, m.height)
}
