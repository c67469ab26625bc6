package tui

import (
	"fmt"
	"strings"

	"github.com/naveenspark/skillhub/pkg/domain"
)

// controlKey identifies one copy control: the card of skill s in view scope.
func controlKey(scope string, s domain.Skill) string {
	return scope + ":" + s.Repository + "/" + s.Name
}

// cardList is a cursor over skill cards.
type cardList struct {
	skills []domain.Skill
	cursor int
}

func (l cardList) move(key string) cardList {
	switch key {
	case "j", "down":
		if l.cursor < len(l.skills)-1 {
			l.cursor++
		}
	case "k", "up":
		if l.cursor > 0 {
			l.cursor--
		}
	case "g", "home":
		l.cursor = 0
	case "G", "end":
		if len(l.skills) > 0 {
			l.cursor = len(l.skills) - 1
		}
	}
	return l
}

func (l cardList) selected() (domain.Skill, bool) {
	if l.cursor < 0 || l.cursor >= len(l.skills) {
		return domain.Skill{}, false
	}
	return l.skills[l.cursor], true
}

// view renders the cards, scrolled so the cursor stays inside height lines.
func (l cardList) view(scope string, showSource bool, marks copyMarks, width, height int) string {
	if len(l.skills) == 0 {
		return ""
	}
	linesPer := 3
	if showSource {
		linesPer = 4
	}
	start := 0
	if height > 0 {
		visible := height / linesPer
		if visible < 1 {
			visible = 1
		}
		if l.cursor >= visible {
			start = l.cursor - visible + 1
		}
	}

	var b strings.Builder
	for i := start; i < len(l.skills); i++ {
		s := l.skills[i]
		b.WriteString(renderCard(s, showSource, i == l.cursor, marks.copied(controlKey(scope, s)), width))
	}
	return b.String()
}

// renderCard draws one skill card:
//
//	▸ name                                  #rank
//	  repository · installs                 [c copy install]
//	  source: npx ...
func renderCard(s domain.Skill, showSource, selected, copied bool, width int) string {
	w := width - 4
	if w < 40 {
		w = 40
	}

	marker := "  "
	nameStyle := normalStyle
	if selected {
		marker = accentStyle.Render("▸ ")
		nameStyle = selectedStyle
	}

	name := nameStyle.Render(truncStr(singleLine(s.Name), w-12))
	rank := rankStyle(s.Rank).Render(s.RankLabel())
	meta := metaStyle.Render(truncStr(singleLine(s.Repository), w/2)) +
		metaStyle.Render(" · ") + dimStyle.Render(s.InstallsLabel()+" installs")

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s  %s\n", marker, name, rank)
	fmt.Fprintf(&b, "  %s  %s\n", meta, copyLabel(copied, "copy install"))
	if showSource {
		fmt.Fprintf(&b, "  %s %s\n", metaStyle.Render("Source URL:"), sourceStyle.Render(truncStr(singleLine(s.SourceURL()), w-12)))
	}
	b.WriteString("\n")
	return b.String()
}
