package domain

import (
	"encoding/json"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{2_500_000, "2.5M"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatsCategories(t *testing.T) {
	var s Stats
	data := `{"totalSkills":120,"pagesScraped":7,"pages":[{"name":"a"},"b",3]}`
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Categories() != 3 {
		t.Errorf("Categories() = %d, want 3", s.Categories())
	}
	if (Stats{}).Categories() != 0 {
		t.Error("expected 0 categories for empty stats")
	}
}

func TestUserInitial(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{"octocat", "O"},
		{"Zed", "Z"},
		{"élodie", "É"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := (User{Username: tt.username}).Initial(); got != tt.want {
			t.Errorf("Initial(%q) = %q, want %q", tt.username, got, tt.want)
		}
	}
}
