package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/naveenspark/skillhub/pkg/domain"
)

func newObservedClient(url string) (*Client, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return New(url, zap.New(core)), logs
}

func TestListSkills(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/skills" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Write([]byte(`[{"name":"pdf","repository":"anthropics/skills","rank":1,"installCount":1500}]`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	skills := c.ListSkills(context.Background())
	if len(skills) != 1 {
		t.Fatalf("got %d skills, want 1", len(skills))
	}
	if skills[0].Name != "pdf" || skills[0].InstallsLabel() != "1500" {
		t.Errorf("skills[0] = %+v", skills[0])
	}
}

func TestFallbacksOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"}) //nolint:errcheck
	}))
	defer srv.Close()

	c, logs := newObservedClient(srv.URL)
	ctx := context.Background()

	if got := c.ListSkills(ctx); got == nil || len(got) != 0 {
		t.Errorf("ListSkills = %#v, want empty non-nil slice", got)
	}
	if got := c.TrendingSkills(ctx); got.Skills == nil || len(got.Skills) != 0 {
		t.Errorf("TrendingSkills = %#v, want {skills: []}", got)
	}
	if got := c.HotSkills(ctx); got.Skills == nil || len(got.Skills) != 0 {
		t.Errorf("HotSkills = %#v, want {skills: []}", got)
	}
	if got := c.SearchSkills(ctx, "pdf"); got.Results == nil || len(got.Results) != 0 {
		t.Errorf("SearchSkills = %#v, want {results: []}", got)
	}
	if got := c.UserSkills(ctx, "octocat"); got != nil {
		t.Errorf("UserSkills = %#v, want nil", got)
	}
	if got := c.SkillDefinition(ctx, "a", "b", "c"); got != nil {
		t.Errorf("SkillDefinition = %#v, want nil", got)
	}
	if got := c.Stats(ctx); got != nil {
		t.Errorf("Stats = %#v, want nil", got)
	}

	if logs.Len() != 7 {
		t.Fatalf("logged %d fallbacks, want 7", logs.Len())
	}
	entry := logs.All()[0]
	if !strings.Contains(entry.ContextMap()["error"].(string), "boom") {
		t.Errorf("log error = %v, want it to contain the API message", entry.ContextMap()["error"])
	}
}

func TestFallbacksOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listens any more

	c, logs := newObservedClient(url)
	if got := c.ListSkills(context.Background()); len(got) != 0 {
		t.Errorf("ListSkills = %v, want empty", got)
	}
	if got := c.Stats(context.Background()); got != nil {
		t.Errorf("Stats = %v, want nil", got)
	}
	if logs.Len() != 2 {
		t.Errorf("logged %d fallbacks, want 2", logs.Len())
	}
}

func TestFallbackOnMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"skills": [`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	if got := c.TrendingSkills(context.Background()); len(got.Skills) != 0 {
		t.Errorf("TrendingSkills = %v, want empty", got)
	}
}

func TestNullBodyUsesFallbackShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`null`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	ctx := context.Background()
	if got := c.ListSkills(ctx); got == nil {
		t.Error("ListSkills returned nil slice for null body")
	}
	if got := c.HotSkills(ctx); got.Skills == nil {
		t.Error("HotSkills returned nil skills for null body")
	}
	if got := c.UserSkills(ctx, "x"); got != nil {
		t.Errorf("UserSkills = %v, want nil for null body", got)
	}
}

func TestSearchSkillsEncodesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/skills/search" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query().Get("q")
		json.NewEncoder(w).Encode(domain.SearchResults{Results: []domain.Skill{{Name: "pdf"}}}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	res := c.SearchSkills(context.Background(), "pdf & docs/ü")
	if gotQuery != "pdf & docs/ü" {
		t.Errorf("server saw q=%q, want %q", gotQuery, "pdf & docs/ü")
	}
	if len(res.Results) != 1 || res.Results[0].Name != "pdf" {
		t.Errorf("Results = %+v", res.Results)
	}
}

func TestSkillDefinitionEscapesPathSegments(t *testing.T) {
	var gotRawPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawPath = r.URL.EscapedPath()
		w.Write([]byte(`{"skill":{"name":"my skill","repository":"o/r"},"skillSourceUrl":"npx skills add o/r"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	def := c.SkillDefinition(context.Background(), "o", "r", "my skill/v2")
	if def == nil || def.Skill == nil {
		t.Fatal("expected a definition")
	}
	if want := "/o/r/my%20skill%2Fv2"; gotRawPath != want {
		t.Errorf("path = %q, want %q", gotRawPath, want)
	}
	if def.SourceURL() != "npx skills add o/r" {
		t.Errorf("SourceURL() = %q", def.SourceURL())
	}
}

func TestUserSkills(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/octocat" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"user":{"username":"octocat","repoCount":2,"totalInstalls":2500000,"skillsCount":4},"skills":[{"name":"a","repository":"octocat/x"}]}`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	us := c.UserSkills(context.Background(), "octocat")
	if us == nil {
		t.Fatal("expected user")
	}
	if us.User.TotalInstalls != 2500000 || len(us.Skills) != 1 {
		t.Errorf("UserSkills = %+v", us)
	}
	if c.UserSkills(context.Background(), "ghost") != nil {
		t.Error("expected nil for unknown user")
	}
}

func TestHTTPError(t *testing.T) {
	c := New("http://example.invalid", nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("nope")) //nolint:errcheck
	}))
	defer srv.Close()
	c.baseURL = srv.URL

	err := c.get(context.Background(), "/skills", nil)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(err) = false, err = %v", err)
	}
	if IsStatus(err, http.StatusInternalServerError) {
		t.Error("IsStatus(err, 500) = true for a 404")
	}
	if got := err.Error(); got != "GET /skills: HTTP 404: nope" {
		t.Errorf("error = %q", got)
	}
}

func TestHTTPErrorWithoutBodyUsesStatusText(t *testing.T) {
	err := &HTTPError{StatusCode: http.StatusBadGateway, Path: "/skills/hot"}
	if got := err.Error(); got != "GET /skills/hot: HTTP 502: Bad Gateway" {
		t.Errorf("error = %q", got)
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound(nil) = true")
	}
}

func TestNotFoundIsNotWarned(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c, logs := newObservedClient(srv.URL)
	if c.SkillDefinition(context.Background(), "o", "r", "missing") != nil {
		t.Fatal("expected nil definition")
	}
	if logs.Len() != 0 {
		t.Errorf("logged %d warnings for a 404, want 0", logs.Len())
	}
}
