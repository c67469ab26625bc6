package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/client"
	"github.com/naveenspark/skillhub/pkg/domain"
)

type featuredLoadedMsg struct {
	skills []domain.Skill
}

type statsLoadedMsg struct {
	stats *domain.Stats
}

// homeModel shows the featured skills and the scrape counters. Its two
// loads run independently; neither has an empty state.
type homeModel struct {
	src           client.Source
	featuredLimit int
	loading       bool
	cards         cardList
	stats         *domain.Stats
	width         int
	height        int
}

func newHomeModel(src client.Source, featuredLimit int) homeModel {
	return homeModel{src: src, featuredLimit: featuredLimit, loading: true}
}

func (m homeModel) Init() (homeModel, tea.Cmd) {
	m.loading = true
	src, limit := m.src, m.featuredLimit
	featured := func() tea.Msg {
		return featuredLoadedMsg{skills: page.LoadFeatured(context.Background(), src, limit)}
	}
	stats := func() tea.Msg {
		return statsLoadedMsg{stats: page.LoadStats(context.Background(), src)}
	}
	return m, tea.Batch(featured, stats)
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case featuredLoadedMsg:
		m.loading = false
		m.cards = cardList{skills: msg.skills}
		return m, nil

	case statsLoadedMsg:
		if msg.stats != nil {
			m.stats = msg.stats
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		m.cards = m.cards.move(msg.String())
	}
	return m, nil
}

func (m homeModel) selected() (domain.Skill, bool) {
	return m.cards.selected()
}

func (m homeModel) View(marks copyMarks) string {
	var out string
	if m.stats != nil {
		line := fmt.Sprintf("%s %s   %s %s   %s %s",
			selectedStyle.Render(fmt.Sprint(m.stats.TotalSkills)), dimStyle.Render("Total Skills"),
			selectedStyle.Render(fmt.Sprint(m.stats.PagesScraped)), dimStyle.Render("Pages Scraped"),
			selectedStyle.Render(fmt.Sprint(m.stats.Categories())), dimStyle.Render("Categories"),
		)
		out = centered(line, m.width) + "\n\n"
	}
	if m.loading {
		return out + renderLoading()
	}
	if len(m.cards.skills) > 0 {
		out += " " + sectionHeaderStyle.Render("FEATURED") + "\n"
	}
	return out + m.cards.view(page.RouteHome.String(), false, marks, m.width, m.height-3)
}
