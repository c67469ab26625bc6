package tui

import (
	"strings"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestRankStyleRendersLabel(t *testing.T) {
	tests := []struct {
		name string
		rank *int
	}{
		{"absent", nil},
		{"first", intPtr(1)},
		{"second", intPtr(2)},
		{"third", intPtr(3)},
		{"other", intPtr(42)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := rankStyle(tc.rank).Render("#7"); !strings.Contains(got, "#7") {
				t.Errorf("rankStyle(%s).Render = %q", tc.name, got)
			}
		})
	}
}

func TestShimmerLogoContainsLetters(t *testing.T) {
	for _, frame := range []int{0, 17, 500} {
		logo := renderShimmerLogo(frame)
		for _, r := range "SKILLHUB" {
			if !strings.ContainsRune(logo, r) {
				t.Errorf("frame %d: logo missing %q", frame, r)
			}
		}
	}
}

func TestHelpEntryFormat(t *testing.T) {
	result := helpEntry("q", "quit")
	if !strings.Contains(result, "q") || !strings.Contains(result, "quit") {
		t.Errorf("helpEntry('q','quit') = %q", result)
	}
}

func TestHelpViewMarksCursor(t *testing.T) {
	items := helpItems("https://api.example.test")
	out := helpView(items, 1)
	if !strings.Contains(out, "https://api.example.test") {
		t.Errorf("help view missing API base: %q", out)
	}
	if !strings.Contains(out, "  > ") {
		t.Errorf("help view missing cursor: %q", out)
	}
	if !strings.Contains(out, "skillhub serve") {
		t.Errorf("help view missing serve command")
	}
}
