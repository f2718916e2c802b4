package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"saleschart/internal/api"
	"saleschart/internal/config"
	apperrors "saleschart/pkg/errors"
	"saleschart/pkg/sales/postgres"
)

// newServeCmd creates the serve command: the HTTP API in front of the
// Postgres sales table.
func newServeCmd(configPath *string) *cobra.Command {
	var (
		listen      string
		databaseURL string
		chartTitle  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sales dataset as JSON and SVG over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			if databaseURL != "" {
				cfg.DatabaseURL = databaseURL
			}
			if cfg.DatabaseURL == "" {
				return apperrors.New(apperrors.ErrCodeInvalidConfig,
					"database URL required: set DATABASE_URL, database_url in the config file, or --database-url")
			}

			provider, err := postgres.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer func() { _ = provider.Close() }()

			srv := api.NewServer(provider, api.Options{
				Canvas:           cfg.Canvas.Layout(),
				AllowedOrigins:   cfg.CORS.AllowedOrigins,
				AllowCredentials: cfg.CORS.AllowCredentials,
				ChartTitle:       chartTitle,
				Logger:           logger,
			})

			httpSrv := &http.Server{
				Addr:              cfg.Listen,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- httpSrv.ListenAndServe()
			}()
			logger.Info("serving sales API", "addr", cfg.Listen, "origins", cfg.CORS.AllowedOrigins)

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				logger.Info("shutting down")
				return httpSrv.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres DSN (overrides config and DATABASE_URL)")
	cmd.Flags().StringVar(&chartTitle, "title", "", "title drawn on the server-rendered chart")

	return cmd
}
