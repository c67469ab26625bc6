// Package web serves the skill hub pages over HTTP. Each request resolves
// a route, runs its controllers against a fresh Document and renders the
// mounted containers into the page layout.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/naveenspark/skillhub/internal/markup"
	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/pkg/client"
)

// SearchHiddenHeader is set on /search responses when the query is too
// short and the result panel should stay hidden.
const SearchHiddenHeader = "X-Search-Hidden"

// Config holds server settings.
type Config struct {
	Listen         string
	SearchLimit    int
	FeaturedLimit  int
	Debounce       time.Duration
	CopyFeedback   time.Duration
	Toast          time.Duration
	AllowedOrigins []string // empty allows any origin
}

// Server is the web surface.
type Server struct {
	cfg        Config
	src        client.Source
	render     *markup.Renderer
	ctrl       *Controllers
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server reading from src.
func New(cfg Config, src client.Source, render *markup.Renderer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		src:    src,
		render: render,
		ctrl:   NewControllers(src, render, logger, cfg.FeaturedLimit),
		logger: logger,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{SearchHiddenHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"ok"}`) //nolint:errcheck // best effort
	})
	r.Get("/search", s.handleSearch)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(markup.Static()))))

	r.Get("/", s.handlePage)
	r.Get("/{page}", s.handlePage)
	r.Get("/pages/{page}", s.handlePage)

	return r
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("web server listening", zap.String("addr", s.cfg.Listen))
		errc <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: listen %s: %w", s.cfg.Listen, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("web: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	route := page.Resolve(r.URL.Path)
	doc := NewDocument(route.Containers()...)

	err := s.ctrl.Run(r.Context(), route, r.URL.Query(), doc)
	var redirect *page.RedirectError
	if errors.As(err, &redirect) {
		s.logger.Debug("missing navigation parameter",
			zap.String("route", route.String()),
			zap.String("param", redirect.Param),
		)
		http.Redirect(w, r, redirect.Target, http.StatusFound)
		return
	}
	if err != nil {
		s.logger.Error("page controller failed", zap.String("route", route.String()), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	html, err := s.render.Layout(markup.Page{
		Title:              route.Title(),
		Nav:                navLinks(route),
		Containers:         doc.Containers(),
		DebounceMillis:     s.cfg.Debounce.Milliseconds(),
		CopyFeedbackMillis: s.cfg.CopyFeedback.Milliseconds(),
		ToastMillis:        s.cfg.Toast.Milliseconds(),
		MinQueryLen:        page.MinQueryLen,
	})
	if err != nil {
		s.logger.Error("render layout", zap.String("route", route.String()), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, string(html)) //nolint:errcheck // client went away
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	res := page.RunSearch(r.Context(), s.src, r.URL.Query().Get("q"), s.cfg.SearchLimit)
	if res.Hidden {
		w.Header().Set(SearchHiddenHeader, "true")
		w.WriteHeader(http.StatusOK)
		return
	}

	html, err := s.render.SearchRows(res.Results)
	if err != nil {
		s.logger.Error("render search results", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, string(html)) //nolint:errcheck // client went away
}

func navLinks(active page.Route) []markup.NavLink {
	tabs := []page.Route{page.RouteHome, page.RouteSkills, page.RouteTrending, page.RouteHot}
	links := make([]markup.NavLink, 0, len(tabs))
	for _, r := range tabs {
		href := "/" + r.File()
		label := r.Title()
		if r == page.RouteHome {
			href, label = "/", "Home"
		}
		links = append(links, markup.NavLink{Href: href, Label: label, Active: r == active})
	}
	return links
}
