package domain

import (
	"strconv"
	"strings"
)

// Literal placeholders shown when a skill field is missing.
const (
	NotAvailable     = "Not Available"
	NoValue          = "N/A"
	NoDescription    = "No description available."
	noGitHubLinkHref = "#"
)

// Skill is a named, installable capability sourced from a GitHub repository.
type Skill struct {
	Name           string      `json:"name"`
	Repository     string      `json:"repository"` // "owner/repo"
	Rank           *int        `json:"rank,omitempty"`
	InstallCount   *int        `json:"installCount,omitempty"`
	SkillSourceURL string      `json:"skillSourceUrl,omitempty"`
	Definition     string      `json:"definition,omitempty"`
	SkillsTree     []TreeEntry `json:"skillsTree,omitempty"`
	GitHubURL      string      `json:"githubUrl,omitempty"`
}

// TreeEntry is one file in a skill's tree listing.
type TreeEntry struct {
	Path string `json:"path"`
}

// SkillList is the envelope returned by the trending and hot endpoints.
type SkillList struct {
	Skills []Skill `json:"skills"`
}

// SearchResults is the envelope returned by the search endpoint.
type SearchResults struct {
	Results []Skill `json:"results"`
}

// SkillDefinition is the response of the skill definition endpoint.
// The install source lives next to the skill, not inside it.
type SkillDefinition struct {
	Skill          *Skill `json:"skill"`
	SkillSourceURL string `json:"skillSourceUrl,omitempty"`
}

// SourceURL returns the definition's install source or the placeholder.
func (d SkillDefinition) SourceURL() string {
	if d.SkillSourceURL == "" {
		return NotAvailable
	}
	return d.SkillSourceURL
}

// SplitRepository splits "owner/repo" on the first slash.
// When there is no slash, owner holds the whole string and ok is false.
func SplitRepository(repository string) (owner, name string, ok bool) {
	owner, name, ok = strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" {
		return repository, "", false
	}
	return owner, name, true
}

// Owner returns the owner part of the repository, or the whole value.
func (s Skill) Owner() string {
	owner, _, _ := SplitRepository(s.Repository)
	return owner
}

// SourceURL returns the install source or "Not Available".
func (s Skill) SourceURL() string {
	if s.SkillSourceURL == "" {
		return NotAvailable
	}
	return s.SkillSourceURL
}

// InstallsLabel renders the install count, "N/A" when absent or zero.
func (s Skill) InstallsLabel() string {
	if s.InstallCount == nil || *s.InstallCount == 0 {
		return NoValue
	}
	return strconv.Itoa(*s.InstallCount)
}

// RankLabel renders "#<rank>", "#N/A" when absent or zero.
func (s Skill) RankLabel() string {
	if s.Rank == nil || *s.Rank == 0 {
		return "#" + NoValue
	}
	return "#" + strconv.Itoa(*s.Rank)
}

// Description returns the definition text or the placeholder.
func (s Skill) Description() string {
	if strings.TrimSpace(s.Definition) == "" {
		return NoDescription
	}
	return s.Definition
}

// HasDescription reports whether the skill carries a definition.
func (s Skill) HasDescription() bool {
	return strings.TrimSpace(s.Definition) != ""
}

// GitHubLink returns the GitHub URL or "#".
func (s Skill) GitHubLink() string {
	if s.GitHubURL == "" {
		return noGitHubLinkHref
	}
	return s.GitHubURL
}
