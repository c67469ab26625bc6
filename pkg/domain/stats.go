package domain

import (
	"encoding/json"
	"fmt"
)

// Stats holds scrape totals for the home page.
type Stats struct {
	TotalSkills  int               `json:"totalSkills"`
	PagesScraped int               `json:"pagesScraped"`
	Pages        []json.RawMessage `json:"pages,omitempty"` // only the length is used
}

// Categories is the number of scraped category pages.
func (s Stats) Categories() int {
	return len(s.Pages)
}

// FormatNumber abbreviates large counts: 1500 -> "1.5K", 2500000 -> "2.5M".
// Both thresholds are inclusive.
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
