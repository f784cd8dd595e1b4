package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"userboard/internal/common/config"
	"userboard/internal/common/logger"
	"userboard/internal/features/user/models"
	"userboard/internal/platform/database"
	"userboard/internal/schema"
	"userboard/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "userboard",
		Short: "User directory web application",
	}

	rootCmd.AddCommand(serveCmd(), migrateCmd(), schemaCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init("userboard", cfg.Debug)

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
				Handler: server.New(db, cfg),
			}

			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("HTTP server failed")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			logger.Info().Msg("Shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the model schema to the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init("userboard-migrate", cfg.Debug)

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}

			if err := db.AutoMigrate(models.All()...); err != nil {
				return err
			}

			logger.Info().Msg("Migration complete")
			return nil
		},
	}
}

func schemaCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Regenerate the schema declaration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return schema.WriteFile(out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "db/schema.sql", "output path")

	return cmd
}
