package main

import (
	"fmt"
	"io"
	"net/url"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naveenspark/skillhub/internal/config"
	"github.com/naveenspark/skillhub/internal/logging"
	"github.com/naveenspark/skillhub/internal/page"
	"github.com/naveenspark/skillhub/internal/tui"
	"github.com/naveenspark/skillhub/pkg/client"
)

// rootFlags are the flags of the TUI launcher.
type rootFlags struct {
	configPath string
	page       string
	repo       string
	name       string
	username   string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "skillhub",
		Short: "Browse the skills catalogue from the terminal",
		Long: `skillhub browses a public catalogue of AI agent skills: listings,
trending and hot rankings, per-skill detail and per-author pages, with
search and one-key copy of install commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			route, query, err := f.start()
			if err != nil {
				return err
			}
			return runTUI(cfg, route, query)
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&f.configPath, "config", ".skillhub.yml", "config file path")
	root.Flags().StringVar(&f.page, "page", "home", "start page: home, skills, trending, hot, skill-detail, user")
	root.Flags().StringVar(&f.repo, "repo", "", "repository (owner/repo) for --page skill-detail")
	root.Flags().StringVar(&f.name, "name", "", "skill name for --page skill-detail")
	root.Flags().StringVar(&f.username, "username", "", "username for --page user")

	root.AddCommand(newServeCmd(&f.configPath), newVersionCmd(out))
	return root
}

// start resolves the starting route and its navigation parameters.
// Missing parameters are left for the TUI to redirect on.
func (f rootFlags) start() (page.Route, url.Values, error) {
	route, ok := page.ParseRoute(f.page)
	if !ok {
		return page.RouteHome, nil, fmt.Errorf("unknown page %q", f.page)
	}
	q := url.Values{}
	if f.repo != "" {
		q.Set("repo", f.repo)
	}
	if f.name != "" {
		q.Set("name", f.name)
	}
	if f.username != "" {
		q.Set("username", f.username)
	}
	return route, q, nil
}

func runTUI(cfg *config.Config, route page.Route, query url.Values) error {
	// stdout belongs to the terminal UI.
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	c := client.New(cfg.APIBase, logger.Named("client"), client.WithTimeout(cfg.RequestTimeout))
	app := tui.NewApp(c, tui.Options{
		Route:         route,
		Query:         query,
		APIBase:       cfg.APIBase,
		Debounce:      cfg.Debounce,
		ToastDuration: cfg.ToastDuration,
		CopyFeedback:  cfg.CopyFeedback,
		SearchLimit:   cfg.SearchLimit,
		FeaturedLimit: cfg.FeaturedLimit,
		Version:       version,
		Logger:        logger.Named("tui"),
	})

	logger.Info("starting tui", zap.String("route", route.String()), zap.String("api_base", cfg.APIBase))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
