package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/client"
	"github.com/naveenspark/skillhub/pkg/domain"
)

type userLoadedMsg struct {
	username string
	profile  page.Profile
}

type userModel struct {
	src      client.Source
	username string
	loading  bool
	profile  page.Profile
	cards    cardList
	width    int
	height   int
}

func newUserModel(src client.Source, username string) userModel {
	return userModel{src: src, username: username, loading: true}
}

func (m userModel) Init() (userModel, tea.Cmd) {
	m.loading = true
	src, username := m.src, m.username
	return m, func() tea.Msg {
		return userLoadedMsg{username: username, profile: page.LoadUser(context.Background(), src, username)}
	}
}

func (m userModel) Update(msg tea.Msg) (userModel, tea.Cmd) {
	switch msg := msg.(type) {
	case userLoadedMsg:
		if msg.username != m.username {
			return m, nil
		}
		m.loading = false
		m.profile = msg.profile
		if msg.profile.HasSkills() {
			m.cards = cardList{skills: msg.profile.User.Skills}
		} else {
			m.cards = cardList{}
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

func (m userModel) selected() (domain.Skill, bool) {
	if m.loading {
		return domain.Skill{}, false
	}
	return m.cards.selected()
}

func (m userModel) View(marks copyMarks) string {
	if m.loading {
		return renderLoading()
	}
	if !m.profile.Found() {
		return renderEmptyState(m.profile.Empty, m.width)
	}

	u := m.profile.User.User
	var b strings.Builder
	b.WriteString(" " + dimStyle.Render("<- back (esc)") + "\n")
	fmt.Fprintf(&b, " %s  %s  %s\n",
		badgeStyle.Render("("+u.Initial()+")"),
		selectedStyle.Render(singleLine(u.Username)),
		dimStyle.Render(fmt.Sprintf("%d repositories", u.RepoCount)),
	)
	fmt.Fprintf(&b, " %s %s   %s %s   %s %s\n\n",
		selectedStyle.Render(domain.FormatNumber(u.TotalInstalls)), dimStyle.Render("Total Installs"),
		selectedStyle.Render(fmt.Sprint(u.SkillsCount)), dimStyle.Render("Skills"),
		selectedStyle.Render(fmt.Sprint(u.RepoCount)), dimStyle.Render("Repos"),
	)

	if !m.profile.HasSkills() {
		b.WriteString(" " + dimStyle.Render(page.NoUserSkills) + "\n")
		return b.String()
	}
	b.WriteString(m.cards.view(page.RouteUser.String(), true, marks, m.width, m.height-4))
	return b.String()
}
