package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/domain"
)

func intPtr(n int) *int { return &n }

func TestSkillCardDefaults(t *testing.T) {
	r := MustNew()
	out, err := r.SkillCard(domain.Skill{Name: "pdf", Repository: "anthropics/skills"}, true)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "N/A")
	assert.Contains(t, html, "#N/A")
	assert.Contains(t, html, "Not Available")
	assert.Contains(t, html, `data-copy="Not Available"`)
	assert.Contains(t, html, "Source URL:")
	assert.Contains(t, html, `href="skill-detail.html?name=pdf&amp;repo=anthropics%2Fskills"`)
}

func TestSkillCardHidesSourceBlock(t *testing.T) {
	r := MustNew()
	out, err := r.SkillCard(domain.Skill{Name: "pdf", Repository: "a/b", SkillSourceURL: "npx x"}, false)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Source URL:")
	assert.Contains(t, string(out), `data-copy="npx x"`)
}

func TestSkillCardEscapesAPIStrings(t *testing.T) {
	r := MustNew()
	evil := domain.Skill{
		Name:           `<img src=x onerror=alert(1)>`,
		Repository:     `a/"><script>alert(2)</script>`,
		SkillSourceURL: `'); alert(3); ('`,
	}
	out, err := r.SkillCard(evil, true)
	require.NoError(t, err)

	html := string(out)
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;img src=x onerror=alert(1)&gt;")
}

func TestUserCard(t *testing.T) {
	r := MustNew()
	out, err := r.UserCard(domain.User{Username: "octocat", RepoCount: 4, TotalInstalls: 2_500_000, SkillsCount: 12})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, ">O</div>")
	assert.Contains(t, html, "2.5M")
	assert.Contains(t, html, "4 repositories")
	assert.Contains(t, html, ">12</p>")
}

func TestSearchRows(t *testing.T) {
	r := MustNew()
	out, err := r.SearchRows(nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "No results found")

	out, err = r.SearchRows([]domain.Skill{{Name: "pdf", Repository: "a/b", Rank: intPtr(2)}, {Name: "xlsx", Repository: "a/b"}})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(out), `class="search-row`))
	assert.Contains(t, string(out), "#2")
}

func TestSkillDetailAllDefaults(t *testing.T) {
	r := MustNew()
	out, err := r.SkillDetail(domain.SkillDefinition{Skill: &domain.Skill{Name: "pdf", Repository: "a/b"}})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<code>Not Available</code>")
	assert.Contains(t, html, "No description available.")
	assert.Contains(t, html, ">N/A</p>")
	assert.Contains(t, html, ">#N/A</p>")
	assert.Contains(t, html, `href="#"`)
	assert.NotContains(t, html, "Skills Tree")
}

func TestSkillDetailFull(t *testing.T) {
	r := MustNew()
	def := domain.SkillDefinition{
		Skill: &domain.Skill{
			Name:         "pdf",
			Repository:   "anthropics/skills",
			Rank:         intPtr(1),
			InstallCount: intPtr(900),
			Definition:   "# PDF\n\nUse **pypdf**.\n\n<script>alert(1)</script>\n\n[x](javascript:alert(1))",
			SkillsTree:   []domain.TreeEntry{{Path: "SKILL.md"}, {Path: "scripts/fill.py"}},
			GitHubURL:    "https://github.com/anthropics/skills",
		},
		SkillSourceURL: "npx skills add anthropics/skills --skill pdf",
	}
	out, err := r.SkillDetail(def)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<strong>pypdf</strong>")
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, `href="javascript:`)
	assert.Contains(t, html, "Skills Tree")
	assert.Contains(t, html, "scripts/fill.py")
	assert.Contains(t, html, "npx skills add anthropics/skills --skill pdf")
	assert.Contains(t, html, `href="https://github.com/anthropics/skills"`)
}

func TestSkillDetailRequiresSkill(t *testing.T) {
	_, err := MustNew().SkillDetail(domain.SkillDefinition{})
	assert.Error(t, err)
}

func TestEmptyStateAndStats(t *testing.T) {
	r := MustNew()
	out, err := r.EmptyState(page.EmptyUser(`<b>x</b>`))
	require.NoError(t, err)
	assert.Contains(t, string(out), "User not found")
	assert.Contains(t, string(out), "Browse Skills")
	assert.NotContains(t, string(out), "<b>x</b>")

	out, err = r.EmptyState(page.EmptyHot)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Browse Skills")

	out, err = r.StatsGrid(domain.Stats{TotalSkills: 42, PagesScraped: 7})
	require.NoError(t, err)
	assert.Contains(t, string(out), ">42</p>")
	assert.Contains(t, string(out), ">0</p>", "categories default to zero")
}

func TestLayoutMountsContainers(t *testing.T) {
	r := MustNew()
	out, err := r.Layout(Page{
		Title:      "Hot",
		Nav:        []NavLink{{Href: "hot.html", Label: "Hot", Active: true}},
		Containers: []Container{{ID: "hotContainer", HTML: "<p>mounted</p>"}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), `<section id="hotContainer" class="container-hotContainer"><p>mounted</p></section>`)
	assert.Contains(t, string(out), `id="searchInput"`)
	assert.Contains(t, string(out), `id="searchResults"`)
}

func TestStaticAssets(t *testing.T) {
	for _, name := range []string{"app.js", "style.css"} {
		f, err := Static().Open(name)
		require.NoError(t, err, name)
		f.Close()
	}
}
