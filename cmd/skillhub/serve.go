package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/naveenspark/skillhub/internal/config"
	"github.com/naveenspark/skillhub/internal/logging"
	"github.com/naveenspark/skillhub/internal/markup"
	"github.com/naveenspark/skillhub/internal/web"
	"github.com/naveenspark/skillhub/pkg/client"
)

func newServeCmd(configPath *string) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the skill hub web pages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if listen != "" {
				cfg.Listen = listen
			}

			logger, err := logging.New(cfg.LogLevel, "stderr")
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			render, err := markup.New()
			if err != nil {
				return err
			}
			c := client.New(cfg.APIBase, logger.Named("client"), client.WithTimeout(cfg.RequestTimeout))
			srv := web.New(web.Config{
				Listen:         cfg.Listen,
				SearchLimit:    cfg.SearchLimit,
				FeaturedLimit:  cfg.FeaturedLimit,
				Debounce:       cfg.Debounce,
				CopyFeedback:   cfg.CopyFeedback,
				Toast:          cfg.ToastDuration,
				AllowedOrigins: cfg.AllowedOrigins,
			}, c, render, logger.Named("web"))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	return cmd
}

