// Package pagetest provides an in-memory client.Source for page tests.
package pagetest

import (
	"context"
	"sync"

	"github.com/naveenspark/skillhub/pkg/client"
	"github.com/naveenspark/skillhub/pkg/domain"
)

// Source is a canned client.Source that records every call.
// A zero Source behaves like an API that is down: every call returns the
// client's documented fallback.
type Source struct {
	Skills      []domain.Skill
	Trending    []domain.Skill
	Hot         []domain.Skill
	Results     []domain.Skill
	Users       map[string]*domain.UserSkills
	Definitions map[string]*domain.SkillDefinition // key: owner/repo/name
	StatsValue  *domain.Stats

	mu      sync.Mutex
	calls   []string
	queries []string
}

var _ client.Source = (*Source)(nil)

func (s *Source) record(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, op)
}

// Calls returns the operations invoked so far, in order.
func (s *Source) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Queries returns every search query received.
func (s *Source) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func orEmpty(skills []domain.Skill) []domain.Skill {
	if skills == nil {
		return []domain.Skill{}
	}
	return skills
}

func (s *Source) ListSkills(context.Context) []domain.Skill {
	s.record("ListSkills")
	return orEmpty(s.Skills)
}

func (s *Source) TrendingSkills(context.Context) domain.SkillList {
	s.record("TrendingSkills")
	return domain.SkillList{Skills: orEmpty(s.Trending)}
}

func (s *Source) HotSkills(context.Context) domain.SkillList {
	s.record("HotSkills")
	return domain.SkillList{Skills: orEmpty(s.Hot)}
}

func (s *Source) SearchSkills(_ context.Context, query string) domain.SearchResults {
	s.record("SearchSkills")
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	return domain.SearchResults{Results: orEmpty(s.Results)}
}

func (s *Source) UserSkills(_ context.Context, username string) *domain.UserSkills {
	s.record("UserSkills")
	return s.Users[username]
}

func (s *Source) SkillDefinition(_ context.Context, owner, repo, name string) *domain.SkillDefinition {
	s.record("SkillDefinition")
	return s.Definitions[owner+"/"+repo+"/"+name]
}

func (s *Source) Stats(context.Context) *domain.Stats {
	s.record("Stats")
	return s.StatsValue
}

// Skill builds a skill with rank and installs set.
func Skill(name, repository string, rank, installs int) domain.Skill {
	return domain.Skill{
		Name:         name,
		Repository:   repository,
		Rank:         &rank,
		InstallCount: &installs,
	}
}

// Skills builds n distinct skills.
func Skills(n int) []domain.Skill {
	out := make([]domain.Skill, n)
	for i := range out {
		out[i] = Skill("skill-"+string(rune('a'+i%26))+string(rune('a'+i/26)), "owner/repo", i+1, (i+1)*100)
	}
	return out
}
