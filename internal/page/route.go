// Package page holds the surface-independent half of every page controller:
// route resolution, navigation parameters, the single fetch each page makes
// and the empty state shown when it yields nothing.
package page

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/naveenspark/skillhub/pkg/domain"
)

// Route identifies one logical page.
type Route int

const (
	RouteHome Route = iota
	RouteSkills
	RouteTrending
	RouteHot
	RouteSkillDetail
	RouteUser
)

// Page file names, as linked from cards and the navigation bar.
const (
	FileHome        = "index.html"
	FileSkills      = "skills.html"
	FileTrending    = "trending.html"
	FileHot         = "hot.html"
	FileSkillDetail = "skill-detail.html"
	FileUser        = "user.html"
)

// Container IDs each page mounts into.
const (
	ContainerSearchInput   = "searchInput"
	ContainerSearchResults = "searchResults"
	ContainerFeatured      = "featuredSkills"
	ContainerStats         = "statsContainer"
	ContainerSkills        = "skillsContainer"
	ContainerTrending      = "trendingContainer"
	ContainerHot           = "hotContainer"
	ContainerSkillDetail   = "skillDetailContainer"
	ContainerUser          = "userContainer"
	ContainerUserSkills    = "userSkillsContainer"
)

type routeEntry struct {
	route      Route
	file       string
	title      string
	containers []string
}

// routes is checked in order; the first file name contained in the path wins.
var routes = []routeEntry{
	{RouteSkills, FileSkills, "All Skills", []string{ContainerSkills}},
	{RouteTrending, FileTrending, "Trending", []string{ContainerTrending}},
	{RouteHot, FileHot, "Hot", []string{ContainerHot}},
	{RouteSkillDetail, FileSkillDetail, "Skill", []string{ContainerSkillDetail}},
	{RouteUser, FileUser, "User", []string{ContainerUser, ContainerUserSkills}},
}

var homeEntry = routeEntry{RouteHome, FileHome, "GCode Skill Hub", []string{ContainerFeatured, ContainerStats}}

// Resolve maps a request path to its route. Unknown paths are the home page.
func Resolve(path string) Route {
	for _, e := range routes {
		if strings.Contains(path, e.file) {
			return e.route
		}
	}
	return RouteHome
}

func (r Route) entry() routeEntry {
	for _, e := range routes {
		if e.route == r {
			return e
		}
	}
	return homeEntry
}

// File returns the page's file name.
func (r Route) File() string { return r.entry().file }

// Title returns the page heading.
func (r Route) Title() string { return r.entry().title }

// Containers lists the container IDs the page's controllers mount into,
// in mount order.
func (r Route) Containers() []string {
	return append([]string(nil), r.entry().containers...)
}

func (r Route) String() string {
	switch r {
	case RouteHome:
		return "home"
	case RouteSkills:
		return "skills"
	case RouteTrending:
		return "trending"
	case RouteHot:
		return "hot"
	case RouteSkillDetail:
		return "skill-detail"
	case RouteUser:
		return "user"
	default:
		return fmt.Sprintf("Route(%d)", int(r))
	}
}

// ParseRoute maps a short name ("skills", "hot", ...) to a route.
func ParseRoute(name string) (Route, bool) {
	for _, r := range []Route{RouteHome, RouteSkills, RouteTrending, RouteHot, RouteSkillDetail, RouteUser} {
		if r.String() == name {
			return r, true
		}
	}
	return RouteHome, false
}

// ErrRedirect is returned when a page is missing a required query parameter.
var ErrRedirect = errors.New("page: missing navigation parameter")

// RedirectError carries the page to redirect to.
type RedirectError struct {
	Target string
	Param  string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("page: missing %q, redirect to %s", e.Param, e.Target)
}

func (e *RedirectError) Unwrap() error { return ErrRedirect }

// SkillKey identifies a skill by repository and name.
type SkillKey struct {
	Repository string
	Name       string
}

// Split returns owner and repository name. A malformed repository degrades
// to owner = whole value and an empty name rather than failing.
func (k SkillKey) Split() (owner, repo string) {
	owner, repo, _ = domain.SplitRepository(k.Repository)
	return owner, repo
}

// SkillKeyFromQuery reads repo and name. Either missing is a redirect.
func SkillKeyFromQuery(q url.Values) (SkillKey, error) {
	repo := q.Get("repo")
	if repo == "" {
		return SkillKey{}, &RedirectError{Target: FileSkills, Param: "repo"}
	}
	name := q.Get("name")
	if name == "" {
		return SkillKey{}, &RedirectError{Target: FileSkills, Param: "name"}
	}
	return SkillKey{Repository: repo, Name: name}, nil
}

// UsernameFromQuery reads username. Missing is a redirect.
func UsernameFromQuery(q url.Values) (string, error) {
	username := q.Get("username")
	if username == "" {
		return "", &RedirectError{Target: FileSkills, Param: "username"}
	}
	return username, nil
}

// SkillDetailURL is the link a skill card navigates to.
func SkillDetailURL(repository, name string) string {
	q := url.Values{}
	q.Set("repo", repository)
	q.Set("name", name)
	return FileSkillDetail + "?" + q.Encode()
}

// UserURL is the link to a user's page.
func UserURL(username string) string {
	q := url.Values{}
	q.Set("username", username)
	return FileUser + "?" + q.Encode()
}
