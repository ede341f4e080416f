package cmd

import (
	"fmt"

	"datadiff/core/config"
	"datadiff/core/database"
	"datadiff/core/logger"
	"datadiff/core/storage"
	"datadiff/feature/health"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// healthCmd runs the health checks from the command line.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the store and the optional database",
	Long:  `Checks that the store is reachable and holds the required folders. Use --fix to create missing folders.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		fix, _ := cmd.Flags().GetBool("fix")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		store, err := storage.NewStore(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage: %w", err)
		}

		// Connect to Database (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
		}

		svc := health.NewService(store, db, logg)

		logg.Info("Checking folder structure...", zap.String("storage", store.Location()))
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if fix {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else {
				logg.Info("Run with --fix to create missing folders.")
			}
		}

		report := svc.Run(ctx)
		logg.Info("Health check completed",
			zap.String("status", report.Status),
			zap.String("storage", report.Checks.Storage.Status),
			zap.String("database", report.Checks.Database.Status),
			zap.Strings("tables", report.Checks.Database.Tables))

		if !report.Healthy() {
			return fmt.Errorf("health check failed: %s", report.Message)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(healthCmd)

	healthCmd.Flags().Bool("fix", false, "Create missing folders")
}
