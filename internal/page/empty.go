package page

import "fmt"

// EmptyState is the placeholder shown when a page's fetch yields nothing.
type EmptyState struct {
	Icon        string
	Title       string
	Description string
	BrowseLink  bool // offer a link back to skills.html
}

var (
	EmptySkills = EmptyState{
		Icon:        "🔍",
		Title:       "No skills found",
		Description: "Unable to load skills at this time. Please try again later.",
	}
	EmptyTrending = EmptyState{
		Icon:        "📈",
		Title:       "No trending skills",
		Description: "Unable to load trending skills at this time.",
	}
	EmptyHot = EmptyState{
		Icon:        "🔥",
		Title:       "No hot skills",
		Description: "Unable to load hot skills at this time.",
	}
	EmptySkillDetail = EmptyState{
		Icon:        "❌",
		Title:       "Skill not found",
		Description: "Unable to load skill details. Please check the URL and try again.",
		BrowseLink:  true,
	}
)

// EmptyUser is the not-found state for a username.
func EmptyUser(username string) EmptyState {
	return EmptyState{
		Icon:        "👤",
		Title:       "User not found",
		Description: fmt.Sprintf(`Unable to find user "%s". Please check the username and try again.`, username),
		BrowseLink:  true,
	}
}

// Fixed copy that is not a full empty state.
const (
	NoSearchResults = "No results found"
	NoUserSkills    = "No skills found for this user."
)
