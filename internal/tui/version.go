package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	latestReleaseURL = "https://api.github.com/repos/naveenspark/skillhub/releases/latest"
	releaseTimeout   = 5 * time.Second
)

// versionCheckMsg reports a newer release, if one exists.
type versionCheckMsg struct {
	latestVersion string
	hasUpdate     bool
}

// checkVersion looks up the latest release in the background. Development
// builds have nothing to compare against and skip it.
func checkVersion(current string) tea.Cmd {
	if current == "" || current == "dev" {
		return nil
	}
	return checkVersionAt(latestReleaseURL, current)
}

// checkVersionAt is checkVersion against an arbitrary releases endpoint.
// Any failure reads as "no update".
func checkVersionAt(endpoint, current string) tea.Cmd {
	return func() tea.Msg {
		tag, ok := latestTag(endpoint)
		if !ok || !isNewerVersion(tag, current) {
			return versionCheckMsg{}
		}
		return versionCheckMsg{latestVersion: "v" + strings.TrimPrefix(tag, "v"), hasUpdate: true}
	}
}

func latestTag(endpoint string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil || release.TagName == "" {
		return "", false
	}
	return release.TagName, true
}

// semver parses "v1.2.3" style versions; missing or non-numeric parts are 0.
func semver(v string) [3]int {
	var out [3]int
	for i, part := range strings.SplitN(strings.TrimPrefix(v, "v"), ".", 3) {
		out[i], _ = strconv.Atoi(part) //nolint:errcheck
	}
	return out
}

// isNewerVersion reports whether latest is a later release than current.
func isNewerVersion(latest, current string) bool {
	l, c := semver(latest), semver(current)
	for i := range l {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}
