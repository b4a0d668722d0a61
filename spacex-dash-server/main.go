// SpaceX Launch Dashboard: launch-outcome charts over a static launch dataset

// Copyright (C) 2014 Christian Paro <christian.paro@gmail.com>,
//                                   <cparo@digitalocean.com>

// This program is free software: you can redistribute it and/or modify it under
// the terms of the GNU General Public License version 2 as published by the
// Free Software Foundation.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.

// You should have received a copy of the GNU General Public License along with
// this program. If not, see <http://www.gnu.org/licenses/>.

// spacex-dash-server serves the SpaceX launch records dashboard.
//
// Usage:
//
//	spacex-dash-server --data spacex_launch_dash.csv --listen :8050
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
	"github.com/kurbaleva/Applied-Data-Science-Capstone/feeds"
	"github.com/kurbaleva/Applied-Data-Science-Capstone/internal/config"
	"github.com/kurbaleva/Applied-Data-Science-Capstone/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Command-line options:
var (
	configPath string // Optional YAML configuration file.
	dataPath   string // Launch dataset, overriding the configuration.
	listenAddr string // Listen address, overriding the configuration.
	verbose    bool   // Log at debug level.
)

var rootCmd = &cobra.Command{
	Use:   "spacex-dash-server",
	Short: "Serve the SpaceX launch records dashboard",
	Long: `Loads the launch dataset once and serves an interactive dashboard with a
success pie chart by launch site and a payload versus outcome scatter chart,
both driven by a site dropdown and a payload range slider.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().StringVar(&dataPath, "data", "", "launch dataset CSV (default from config)")
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (default from config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("spacex-dash-server: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("data") {
		cfg.DataPath = dataPath
	}
	if cmd.Flags().Changed("listen") {
		cfg.Listen = listenAddr
	}

	logger, err := logging.New(cfg.Logging, verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Loading is a one-shot startup step: without the dataset there is
	// nothing to serve, so a failure here ends the process.
	table, err := feeds.LoadCSV(cfg.DataPath)
	if err != nil {
		logger.Error("failed to load launch data", zap.Error(err))
		return err
	}
	d := dashboard.New(table)
	stats := d.Stats()
	logger.Info(
		"launch data loaded",
		zap.String("path", cfg.DataPath),
		zap.Int("records", table.Len()),
		zap.Int("sites", len(table.Sites())),
		zap.Float64("min_payload", stats.MinPayload),
		zap.Float64("max_payload", stats.MaxPayload),
		zap.Float64("rounded_max_payload", stats.RoundedMaxPayload))

	srv, err := newServer(d, logger, cfg.Chart.Width, cfg.Chart.Height)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, srv.routes(), cfg, logger)
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down,
// giving in-flight requests cfg.ShutdownTimeout to complete.
func serve(
	ctx context.Context,
	handler http.Handler,
	cfg *config.Config,
	logger *zap.Logger) error {

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("serving dashboard", zap.String("listen", cfg.Listen))
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
