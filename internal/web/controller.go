package web

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/naveenspark/skillhub/internal/markup"
	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/client"
)

// Controllers runs the page controllers of every route against a Document.
type Controllers struct {
	src           client.Source
	render        *markup.Renderer
	logger        *zap.Logger
	featuredLimit int
}

// NewControllers wires the controllers to a data source and renderer.
func NewControllers(src client.Source, render *markup.Renderer, logger *zap.Logger, featuredLimit int) *Controllers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controllers{src: src, render: render, logger: logger, featuredLimit: featuredLimit}
}

// Run executes the controllers of route. Navigation parameters are read
// before anything is mounted; a missing one returns a *page.RedirectError
// and no fetch happens.
func (c *Controllers) Run(ctx context.Context, route page.Route, query url.Values, doc *Document) error {
	switch route {
	case page.RouteHome:
		return c.home(ctx, doc)
	case page.RouteSkills, page.RouteTrending, page.RouteHot:
		return c.list(ctx, route, doc)
	case page.RouteSkillDetail:
		key, err := page.SkillKeyFromQuery(query)
		if err != nil {
			return err
		}
		return c.detail(ctx, key, doc)
	case page.RouteUser:
		username, err := page.UsernameFromQuery(query)
		if err != nil {
			return err
		}
		return c.user(ctx, username, doc)
	default:
		return fmt.Errorf("web: no controller for %s", route)
	}
}

// home runs the featured and stats controllers concurrently; each owns
// its container and neither shows a spinner.
func (c *Controllers) home(ctx context.Context, doc *Document) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if !doc.Has(page.ContainerFeatured) {
			return nil
		}
		html, err := c.render.SkillCards(page.LoadFeatured(gctx, c.src, c.featuredLimit), false)
		if err != nil {
			return err
		}
		doc.Mount(page.ContainerFeatured, html)
		return nil
	})
	g.Go(func() error {
		if !doc.Has(page.ContainerStats) {
			return nil
		}
		stats := page.LoadStats(gctx, c.src)
		if stats == nil {
			return nil
		}
		html, err := c.render.StatsGrid(*stats)
		if err != nil {
			return err
		}
		doc.Mount(page.ContainerStats, html)
		return nil
	})
	return g.Wait()
}

func (c *Controllers) list(ctx context.Context, route page.Route, doc *Document) error {
	id := route.Containers()[0]
	if !doc.Has(id) {
		return nil
	}
	if err := c.spinner(doc, id); err != nil {
		return err
	}

	l, _ := page.LoadList(ctx, c.src, route)
	if l.IsEmpty() {
		return c.empty(doc, id, l.Empty)
	}
	html, err := c.render.SkillCards(l.Skills, l.ShowSource)
	if err != nil {
		return err
	}
	doc.Mount(id, html)
	return nil
}

func (c *Controllers) detail(ctx context.Context, key page.SkillKey, doc *Document) error {
	if !doc.Has(page.ContainerSkillDetail) {
		return nil
	}
	if err := c.spinner(doc, page.ContainerSkillDetail); err != nil {
		return err
	}

	d := page.LoadSkillDetail(ctx, c.src, key)
	if !d.Found() {
		return c.empty(doc, page.ContainerSkillDetail, d.Empty)
	}
	html, err := c.render.SkillDetail(*d.Definition)
	if err != nil {
		return err
	}
	doc.Mount(page.ContainerSkillDetail, html)
	return nil
}

func (c *Controllers) user(ctx context.Context, username string, doc *Document) error {
	if !doc.Has(page.ContainerUser) || !doc.Has(page.ContainerUserSkills) {
		return nil
	}
	if err := c.spinner(doc, page.ContainerUser); err != nil {
		return err
	}

	p := page.LoadUser(ctx, c.src, username)
	if !p.Found() {
		return c.empty(doc, page.ContainerUser, p.Empty)
	}

	card, err := c.render.UserCard(p.User.User)
	if err != nil {
		return err
	}
	doc.Mount(page.ContainerUser, card)

	html, err := c.render.UserNoSkills()
	if p.HasSkills() {
		html, err = c.render.SkillCards(p.User.Skills, true)
	}
	if err != nil {
		return err
	}
	doc.Mount(page.ContainerUserSkills, html)
	return nil
}

func (c *Controllers) spinner(doc *Document, id string) error {
	html, err := c.render.Spinner()
	if err != nil {
		return err
	}
	doc.Mount(id, html)
	return nil
}

func (c *Controllers) empty(doc *Document, id string, e page.EmptyState) error {
	html, err := c.render.EmptyState(e)
	if err != nil {
		return err
	}
	doc.Mount(id, html)
	return nil
}
