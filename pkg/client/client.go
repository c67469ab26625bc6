package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/naveenspark/skillhub/pkg/domain"
)

// Source is the set of read operations the pages depend on.
// Every method degrades to a documented fallback instead of failing.
type Source interface {
	ListSkills(ctx context.Context) []domain.Skill
	TrendingSkills(ctx context.Context) domain.SkillList
	HotSkills(ctx context.Context) domain.SkillList
	SearchSkills(ctx context.Context, query string) domain.SearchResults
	UserSkills(ctx context.Context, username string) *domain.UserSkills
	SkillDefinition(ctx context.Context, owner, repo, name string) *domain.SkillDefinition
	Stats(ctx context.Context) *domain.Stats
}

// Client is the Skill Hub API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ Source = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request. Zero keeps requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a new API client. A nil logger discards diagnostics.
func New(baseURL string, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListSkills returns every skill, or an empty slice.
func (c *Client) ListSkills(ctx context.Context) []domain.Skill {
	var skills []domain.Skill
	if err := c.get(ctx, "/skills", &skills); err != nil {
		c.fallback("ListSkills", err)
		return []domain.Skill{}
	}
	if skills == nil {
		return []domain.Skill{}
	}
	return skills
}

// TrendingSkills returns the trending ranking, or an empty list.
func (c *Client) TrendingSkills(ctx context.Context) domain.SkillList {
	return c.skillList(ctx, "TrendingSkills", "/skills/trending")
}

// HotSkills returns the hot ranking, or an empty list.
func (c *Client) HotSkills(ctx context.Context) domain.SkillList {
	return c.skillList(ctx, "HotSkills", "/skills/hot")
}

func (c *Client) skillList(ctx context.Context, op, path string) domain.SkillList {
	var list domain.SkillList
	if err := c.get(ctx, path, &list); err != nil {
		c.fallback(op, err)
		return domain.SkillList{Skills: []domain.Skill{}}
	}
	if list.Skills == nil {
		list.Skills = []domain.Skill{}
	}
	return list
}

// SearchSkills searches skills by text query, or returns no results.
func (c *Client) SearchSkills(ctx context.Context, query string) domain.SearchResults {
	params := url.Values{}
	params.Set("q", query)

	var res domain.SearchResults
	if err := c.get(ctx, "/skills/search?"+params.Encode(), &res); err != nil {
		c.fallback("SearchSkills", err)
		return domain.SearchResults{Results: []domain.Skill{}}
	}
	if res.Results == nil {
		res.Results = []domain.Skill{}
	}
	return res
}

// UserSkills looks up a user and their skills. Nil means not found or failed.
func (c *Client) UserSkills(ctx context.Context, username string) *domain.UserSkills {
	var out *domain.UserSkills
	if err := c.get(ctx, "/user/"+url.PathEscape(username), &out); err != nil {
		c.fallback("UserSkills", err)
		return nil
	}
	return out
}

// SkillDefinition fetches one skill by owner, repository and name.
// Nil means not found or failed.
func (c *Client) SkillDefinition(ctx context.Context, owner, repo, name string) *domain.SkillDefinition {
	path := "/" + url.PathEscape(owner) + "/" + url.PathEscape(repo) + "/" + url.PathEscape(name)
	var out *domain.SkillDefinition
	if err := c.get(ctx, path, &out); err != nil {
		c.fallback("SkillDefinition", err)
		return nil
	}
	return out
}

// Stats returns scrape totals. Nil means failed.
func (c *Client) Stats(ctx context.Context) *domain.Stats {
	var out *domain.Stats
	if err := c.get(ctx, "/skills/stats", &out); err != nil {
		c.fallback("Stats", err)
		return nil
	}
	return out
}

func (c *Client) fallback(op string, err error) {
	if IsNotFound(err) {
		c.logger.Debug("api resource not found, using fallback", zap.String("op", op), zap.Error(err))
		return
	}
	c.logger.Warn("api request failed, using fallback",
		zap.String("op", op),
		zap.Error(err),
	)
}

func (c *Client) doRequest(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Path: path, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Path: path, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Path: path, Message: strings.TrimSpace(string(respBody))}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response %s: %w", path, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, out)
}
