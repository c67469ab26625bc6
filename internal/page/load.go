package page

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/naveenspark/skillhub/pkg/client"
	"github.com/naveenspark/skillhub/pkg/domain"
)

// MinQueryLen is the shortest query that triggers a search request.
const MinQueryLen = 2

// List is the outcome of a listing page's fetch.
type List struct {
	Skills     []domain.Skill
	ShowSource bool       // cards show their source URL block
	Empty      EmptyState // shown when Skills is empty
}

// IsEmpty reports whether the empty state should be shown.
func (l List) IsEmpty() bool { return len(l.Skills) == 0 }

// LoadSkills fetches the full skill listing.
func LoadSkills(ctx context.Context, src client.Source) List {
	return List{Skills: src.ListSkills(ctx), Empty: EmptySkills}
}

// LoadTrending fetches the trending ranking.
func LoadTrending(ctx context.Context, src client.Source) List {
	return List{Skills: src.TrendingSkills(ctx).Skills, ShowSource: true, Empty: EmptyTrending}
}

// LoadHot fetches the hot ranking.
func LoadHot(ctx context.Context, src client.Source) List {
	return List{Skills: src.HotSkills(ctx).Skills, ShowSource: true, Empty: EmptyHot}
}

// LoadList dispatches to the loader of a listing route.
func LoadList(ctx context.Context, src client.Source, r Route) (List, bool) {
	switch r {
	case RouteSkills:
		return LoadSkills(ctx, src), true
	case RouteTrending:
		return LoadTrending(ctx, src), true
	case RouteHot:
		return LoadHot(ctx, src), true
	}
	return List{}, false
}

// LoadFeatured returns the first limit skills for the home page.
// The home page has no empty state; an empty result mounts nothing.
func LoadFeatured(ctx context.Context, src client.Source, limit int) []domain.Skill {
	skills := src.ListSkills(ctx)
	if len(skills) > limit {
		skills = skills[:limit]
	}
	return skills
}

// LoadStats fetches the home page counters; nil leaves the container as is.
func LoadStats(ctx context.Context, src client.Source) *domain.Stats {
	return src.Stats(ctx)
}

// Detail is the outcome of the skill detail fetch.
type Detail struct {
	Definition *domain.SkillDefinition
	Empty      EmptyState
}

// Found reports whether a skill was returned.
func (d Detail) Found() bool {
	return d.Definition != nil && d.Definition.Skill != nil
}

// LoadSkillDetail fetches one skill's definition.
func LoadSkillDetail(ctx context.Context, src client.Source, key SkillKey) Detail {
	owner, repo := key.Split()
	return Detail{
		Definition: src.SkillDefinition(ctx, owner, repo, key.Name),
		Empty:      EmptySkillDetail,
	}
}

// Profile is the outcome of the user page fetch.
type Profile struct {
	Username string
	User     *domain.UserSkills
	Empty    EmptyState
}

// Found reports whether the user exists.
func (p Profile) Found() bool { return p.User != nil }

// HasSkills reports whether the user has skills to list.
func (p Profile) HasSkills() bool { return p.User != nil && len(p.User.Skills) > 0 }

// LoadUser fetches a user and their skills.
func LoadUser(ctx context.Context, src client.Source, username string) Profile {
	return Profile{
		Username: username,
		User:     src.UserSkills(ctx, username),
		Empty:    EmptyUser(username),
	}
}

// Search is the outcome of one search request.
type Search struct {
	Query   string
	Hidden  bool // query too short: panel hidden, nothing requested
	Results []domain.Skill
}

// NoResults reports whether the panel should show the "No results found" row.
func (s Search) NoResults() bool { return !s.Hidden && len(s.Results) == 0 }

// ShouldSearch reports whether a raw input value is long enough to query.
func ShouldSearch(raw string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(raw)) >= MinQueryLen
}

// RunSearch trims the query, skips short ones and caps results at limit.
func RunSearch(ctx context.Context, src client.Source, raw string, limit int) Search {
	q := strings.TrimSpace(raw)
	if !ShouldSearch(q) {
		return Search{Query: q, Hidden: true}
	}
	results := src.SearchSkills(ctx, q).Results
	if len(results) > limit {
		results = results[:limit]
	}
	return Search{Query: q, Results: results}
}
