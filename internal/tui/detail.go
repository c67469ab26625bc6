package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/client"
	"github.com/naveenspark/skillhub/pkg/domain"
)

// detailScope names the install command control on the detail view.
const detailScope = "skill-detail"

type detailLoadedMsg struct {
	key    page.SkillKey
	detail page.Detail
}

type detailModel struct {
	src     client.Source
	key     page.SkillKey
	loading bool
	detail  page.Detail
	offset  int // scroll position in lines
	width   int
	height  int
}

func newDetailModel(src client.Source, key page.SkillKey) detailModel {
	return detailModel{src: src, key: key, loading: true}
}

func (m detailModel) Init() (detailModel, tea.Cmd) {
	m.loading = true
	m.offset = 0
	src, key := m.src, m.key
	return m, func() tea.Msg {
		return detailLoadedMsg{key: key, detail: page.LoadSkillDetail(context.Background(), src, key)}
	}
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.key != m.key {
			return m, nil
		}
		m.loading = false
		m.detail = msg.detail
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.offset++
		case "k", "up":
			if m.offset > 0 {
				m.offset--
			}
		case "g", "home":
			m.offset = 0
		}
	}
	return m, nil
}

func (m detailModel) skill() (domain.Skill, bool) {
	if m.loading || !m.detail.Found() {
		return domain.Skill{}, false
	}
	return *m.detail.Definition.Skill, true
}

// installCommand is what the detail view's copy control writes.
func (m detailModel) installCommand() (string, bool) {
	if m.loading || !m.detail.Found() {
		return "", false
	}
	return m.detail.Definition.SourceURL(), true
}

func (m detailModel) View(marks copyMarks) string {
	if m.loading {
		return renderLoading()
	}
	if !m.detail.Found() {
		return renderEmptyState(m.detail.Empty, m.width)
	}

	s := *m.detail.Definition.Skill
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	wrap := lipgloss.NewStyle().Width(w)

	var b strings.Builder
	b.WriteString(" " + dimStyle.Render("<- back (esc)") + "\n")
	fmt.Fprintf(&b, " %s  %s\n", selectedStyle.Render(singleLine(s.Name)), availableStyle.Render("Available"))
	b.WriteString(" " + metaStyle.Render(singleLine(s.Repository)) + "\n\n")

	b.WriteString(" " + sectionHeaderStyle.Render("INSTALL COMMAND") + "  " + copyLabel(marks.copied(controlKey(detailScope, s)), "copy") + "\n")
	for _, line := range strings.Split(wrap.Render(m.detail.Definition.SourceURL()), "\n") {
		b.WriteString(" " + sourceStyle.Render(line) + "\n")
	}

	b.WriteString("\n " + sectionHeaderStyle.Render("DESCRIPTION") + "\n")
	for _, line := range strings.Split(wrap.Render(s.Description()), "\n") {
		b.WriteString(" " + normalStyle.Render(line) + "\n")
	}

	b.WriteString("\n " + sectionHeaderStyle.Render("STATISTICS") + "\n")
	fmt.Fprintf(&b, " %s %s   %s %s   %s %s\n",
		selectedStyle.Render(s.InstallsLabel()), dimStyle.Render("Installs"),
		rankStyle(s.Rank).Render(s.RankLabel()), dimStyle.Render("Rank"),
		selectedStyle.Render(singleLine(s.Repository)), dimStyle.Render("Repository"),
	)
	b.WriteString(" " + helpEntry("o", "View on GitHub") + " " + metaStyle.Render(s.GitHubLink()) + "\n")

	if len(s.SkillsTree) > 0 {
		b.WriteString("\n " + sectionHeaderStyle.Render("SKILLS TREE") + "\n")
		for _, e := range s.SkillsTree {
			b.WriteString("   " + normalStyle.Render(singleLine(e.Path)) + "\n")
		}
	}

	lines := strings.Split(b.String(), "\n")
	off := m.offset
	if off > len(lines)-1 {
		off = len(lines) - 1
	}
	return truncateToHeight(strings.Join(lines[off:], "\n"), m.height)
}
