// Package markup renders typed view models into HTML fragments and pages.
// All API strings pass through html/template, so nothing the API returns
// is interpreted as markup.
package markup

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the stylesheet and script served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}
	return sub
}

// Renderer executes the embedded template set.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"detailURL":    page.SkillDetailURL,
		"userURL":      page.UserURL,
		"formatNumber": domain.FormatNumber,
	}
	tmpl, err := template.New("markup").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("markup: parse templates: %w", err)
	}

	// Raw HTML in definitions is dropped and unsafe link schemes are
	// neutralised; goldmark does both unless html.WithUnsafe is set.
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	return &Renderer{tmpl: tmpl, md: md}, nil
}

// MustNew is New for package-level setup in tests and main.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("markup: execute %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}

// Spinner is the loading placeholder.
func (r *Renderer) Spinner() (template.HTML, error) {
	return r.execute("spinner", nil)
}

// SkillCard renders one skill summary, optionally with its source URL block.
func (r *Renderer) SkillCard(s domain.Skill, showSource bool) (template.HTML, error) {
	return r.execute("skill-card", struct {
		Skill      domain.Skill
		ShowSource bool
	}{s, showSource})
}

// SkillCards renders a list of cards back to back.
func (r *Renderer) SkillCards(skills []domain.Skill, showSource bool) (template.HTML, error) {
	var b strings.Builder
	for _, s := range skills {
		card, err := r.SkillCard(s, showSource)
		if err != nil {
			return "", err
		}
		b.WriteString(string(card))
	}
	return template.HTML(b.String()), nil //nolint:gosec // concatenated template output
}

// UserCard renders the user's counters and avatar initial.
func (r *Renderer) UserCard(u domain.User) (template.HTML, error) {
	return r.execute("user-card", struct{ User domain.User }{u})
}

// SearchRows renders search matches, or the "No results found" row.
func (r *Renderer) SearchRows(results []domain.Skill) (template.HTML, error) {
	if len(results) == 0 {
		return r.execute("search-empty", page.NoSearchResults)
	}
	var b strings.Builder
	for _, s := range results {
		row, err := r.execute("search-row", s)
		if err != nil {
			return "", err
		}
		b.WriteString(string(row))
	}
	return template.HTML(b.String()), nil //nolint:gosec // concatenated template output
}

// StatsGrid renders the three home page counters.
func (r *Renderer) StatsGrid(s domain.Stats) (template.HTML, error) {
	return r.execute("stats-grid", s)
}

// EmptyState renders a page's placeholder.
func (r *Renderer) EmptyState(e page.EmptyState) (template.HTML, error) {
	return r.execute("empty-state", e)
}

// UserNoSkills is the row shown for a user without skills.
func (r *Renderer) UserNoSkills() (template.HTML, error) {
	return r.execute("user-no-skills", page.NoUserSkills)
}

// SkillDetail renders the full detail panel.
func (r *Renderer) SkillDetail(def domain.SkillDefinition) (template.HTML, error) {
	if def.Skill == nil {
		return "", fmt.Errorf("markup: skill detail without skill")
	}
	desc, err := r.Description(*def.Skill)
	if err != nil {
		return "", err
	}
	return r.execute("skill-detail", struct {
		Skill       domain.Skill
		SourceURL   string
		Description template.HTML
	}{*def.Skill, def.SourceURL(), desc})
}

// Description renders the skill definition as markdown, or the literal
// placeholder when the skill has none.
func (r *Renderer) Description(s domain.Skill) (template.HTML, error) {
	if !s.HasDescription() {
		return template.HTML("<p>" + template.HTMLEscapeString(domain.NoDescription) + "</p>"), nil //nolint:gosec // escaped
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s.Definition), &buf); err != nil {
		return "", fmt.Errorf("markup: render definition: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // goldmark without WithUnsafe
}

// NavLink is one entry of the page navigation bar.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// Container is a mounted container: its ID and current content.
type Container struct {
	ID   string
	HTML template.HTML
}

// Page is the data for a full HTML page.
type Page struct {
	Title              string
	Nav                []NavLink
	Containers         []Container
	DebounceMillis     int64
	CopyFeedbackMillis int64
	ToastMillis        int64
	MinQueryLen        int // shortest query the search box sends
}

// Layout renders a full page around its mounted containers.
func (r *Renderer) Layout(p Page) (template.HTML, error) {
	return r.execute("layout", p)
}
