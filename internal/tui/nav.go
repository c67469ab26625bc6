package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/domain"
)

// openDetailMsg pushes the detail view of one skill.
type openDetailMsg struct {
	key page.SkillKey
}

// openUserMsg pushes a user's page.
type openUserMsg struct {
	username string
}

func openDetail(s domain.Skill) tea.Cmd {
	key := page.SkillKey{Repository: s.Repository, Name: s.Name}
	return func() tea.Msg { return openDetailMsg{key: key} }
}

func openUser(username string) tea.Cmd {
	return func() tea.Msg { return openUserMsg{username: username} }
}
