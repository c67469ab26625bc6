package page_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/internal/page/pagetest"
	"github.com/naveenspark/skillhub/pkg/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want page.Route
	}{
		{"/pages/skills.html", page.RouteSkills},
		{"/pages/trending.html", page.RouteTrending},
		{"/pages/hot.html", page.RouteHot},
		{"/pages/skill-detail.html", page.RouteSkillDetail},
		{"/pages/user.html", page.RouteUser},
		{"/", page.RouteHome},
		{"/index.html", page.RouteHome},
		{"/pages/unknown.html", page.RouteHome},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, page.Resolve(tt.path))
		})
	}
}

func TestRouteContainers(t *testing.T) {
	assert.Equal(t, []string{"featuredSkills", "statsContainer"}, page.RouteHome.Containers())
	assert.Equal(t, []string{"userContainer", "userSkillsContainer"}, page.RouteUser.Containers())
	assert.Equal(t, "skill-detail.html", page.RouteSkillDetail.File())

	r, ok := page.ParseRoute("trending")
	assert.True(t, ok)
	assert.Equal(t, page.RouteTrending, r)
	_, ok = page.ParseRoute("nope")
	assert.False(t, ok)
}

func TestSkillKeyFromQuery(t *testing.T) {
	key, err := page.SkillKeyFromQuery(url.Values{"repo": {"anthropics/skills"}, "name": {"pdf"}})
	require.NoError(t, err)
	owner, repo := key.Split()
	assert.Equal(t, "anthropics", owner)
	assert.Equal(t, "skills", repo)
	assert.Equal(t, "pdf", key.Name)

	for _, q := range []url.Values{
		{},
		{"repo": {"a/b"}},
		{"name": {"pdf"}},
		{"repo": {""}, "name": {"pdf"}},
	} {
		_, err := page.SkillKeyFromQuery(q)
		require.Error(t, err)
		assert.True(t, errors.Is(err, page.ErrRedirect))
		var re *page.RedirectError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, "skills.html", re.Target)
	}
}

func TestSkillKeyMalformedRepositoryDegrades(t *testing.T) {
	key := page.SkillKey{Repository: "noslash", Name: "x"}
	owner, repo := key.Split()
	assert.Equal(t, "noslash", owner)
	assert.Empty(t, repo)
}

func TestUsernameFromQuery(t *testing.T) {
	name, err := page.UsernameFromQuery(url.Values{"username": {"octocat"}})
	require.NoError(t, err)
	assert.Equal(t, "octocat", name)

	_, err = page.UsernameFromQuery(url.Values{})
	assert.ErrorIs(t, err, page.ErrRedirect)
}

func TestNavigationURLsAreEncoded(t *testing.T) {
	assert.Equal(t, "skill-detail.html?name=my+skill%26x&repo=o%2Fr", page.SkillDetailURL("o/r", "my skill&x"))
	assert.Equal(t, "user.html?username=a%2Fb", page.UserURL("a/b"))
}

func TestListLoadersUseFallbackAsEmpty(t *testing.T) {
	src := &pagetest.Source{}
	ctx := context.Background()

	for _, r := range []page.Route{page.RouteSkills, page.RouteTrending, page.RouteHot} {
		list, ok := page.LoadList(ctx, src, r)
		require.True(t, ok, r.String())
		assert.True(t, list.IsEmpty(), r.String())
		assert.NotEmpty(t, list.Empty.Title, r.String())
	}
	_, ok := page.LoadList(ctx, src, page.RouteUser)
	assert.False(t, ok)

	assert.Equal(t, []string{"ListSkills", "TrendingSkills", "HotSkills"}, src.Calls())
}

func TestLoadTrendingShowsSource(t *testing.T) {
	src := &pagetest.Source{Trending: pagetest.Skills(3)}
	list := page.LoadTrending(context.Background(), src)
	assert.Len(t, list.Skills, 3)
	assert.True(t, list.ShowSource)
	assert.False(t, page.LoadSkills(context.Background(), src).ShowSource)
}

func TestLoadFeaturedCapsAtLimit(t *testing.T) {
	src := &pagetest.Source{Skills: pagetest.Skills(20)}
	assert.Len(t, page.LoadFeatured(context.Background(), src, 8), 8)

	src = &pagetest.Source{Skills: pagetest.Skills(3)}
	assert.Len(t, page.LoadFeatured(context.Background(), src, 8), 3)
}

func TestLoadSkillDetail(t *testing.T) {
	skill := pagetest.Skill("pdf", "anthropics/skills", 1, 10)
	src := &pagetest.Source{Definitions: map[string]*domain.SkillDefinition{
		"anthropics/skills/pdf":   {Skill: &skill},
		"anthropics/skills/empty": {},
	}}
	ctx := context.Background()

	d := page.LoadSkillDetail(ctx, src, page.SkillKey{Repository: "anthropics/skills", Name: "pdf"})
	assert.True(t, d.Found())

	d = page.LoadSkillDetail(ctx, src, page.SkillKey{Repository: "anthropics/skills", Name: "empty"})
	assert.False(t, d.Found(), "a definition without a skill is not found")

	d = page.LoadSkillDetail(ctx, src, page.SkillKey{Repository: "anthropics/skills", Name: "missing"})
	assert.False(t, d.Found())
	assert.Equal(t, page.EmptySkillDetail, d.Empty)
}

func TestLoadUser(t *testing.T) {
	src := &pagetest.Source{Users: map[string]*domain.UserSkills{
		"octocat": {User: domain.User{Username: "octocat"}},
	}}
	p := page.LoadUser(context.Background(), src, "octocat")
	assert.True(t, p.Found())
	assert.False(t, p.HasSkills())

	p = page.LoadUser(context.Background(), src, "ghost")
	assert.False(t, p.Found())
	assert.Equal(t, `Unable to find user "ghost". Please check the username and try again.`, p.Empty.Description)
}

func TestRunSearch(t *testing.T) {
	src := &pagetest.Source{Results: pagetest.Skills(25)}
	ctx := context.Background()

	s := page.RunSearch(ctx, src, " a ", 10)
	assert.True(t, s.Hidden)
	assert.Empty(t, src.Queries(), "short query must not be sent")

	s = page.RunSearch(ctx, src, "  pdf ", 10)
	assert.False(t, s.Hidden)
	assert.Len(t, s.Results, 10)
	assert.Equal(t, []string{"pdf"}, src.Queries())

	empty := &pagetest.Source{}
	s = page.RunSearch(ctx, empty, "zz", 10)
	assert.True(t, s.NoResults())
}
