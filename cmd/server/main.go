package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/logging"
	"portfolio-api/internal/server"
	"portfolio-api/internal/service"
	"portfolio-api/internal/tasks"
	"portfolio-api/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "Portfolio API - contact form and portfolio content backend",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logConfig := &logging.Config{
			Level:      cfg.LogLevel,
			File:       cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		}
		if err := logging.InitLogger(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger := logging.GetLogger()
		defer logger.Close()

		logger.Info("Starting server in %s mode", cfg.Environment)

		srv := server.NewServer(cfg)
		srv.Init()

		// Evict idle sender keys from the submission ledger in the background
		sweep := tasks.NewLedgerSweep(srv.Store(), service.Window(), 30*time.Minute)
		sweep.Start()
		defer sweep.Stop()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return srv.Start(ctx)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
