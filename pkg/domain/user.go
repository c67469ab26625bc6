package domain

import (
	"strings"
	"unicode/utf8"
)

// User is a skill author with aggregate counters.
type User struct {
	Username      string `json:"username"`
	RepoCount     int    `json:"repoCount"`
	TotalInstalls int    `json:"totalInstalls"`
	SkillsCount   int    `json:"skillsCount"`
}

// UserSkills is the response of the user lookup endpoint.
type UserSkills struct {
	User   User    `json:"user"`
	Skills []Skill `json:"skills"`
}

// Initial is the avatar letter: the uppercased first rune of the username.
func (u User) Initial() string {
	r, size := utf8.DecodeRuneInString(u.Username)
	if size == 0 || r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}
