package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"datadiff/core/config"
	"datadiff/core/database"
	"datadiff/core/formats"
	"datadiff/core/loader"
	"datadiff/core/logger"
	"datadiff/core/server"
	"datadiff/core/storage"

	"datadiff/feature/dates"
	"datadiff/feature/filediff"
	"datadiff/feature/health"
	"datadiff/feature/health/checks"
	"datadiff/feature/mockdata"

	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "datadiff/docs/swagger"
)

// @title Datadiff API
// @version 1.0
// @description Compares CSV, XLSX and XML files, generates mock datasets and rewrites dates.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the datadiff server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Initialize Storage
		store, err := storage.NewStore(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage", zap.Error(err))
		}
		ensureStructure(cmd.Context(), store, logg)

		// 5. Initialize Fiber App (RayID, request logging, CORS)
		app := server.New(cfg.Server, logg)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Register and Load Features
		mgr := loader.NewManager(logg)
		mgr.Register(health.NewFeature(store, db, logg))
		mgr.Register(filediff.NewFeature(store, formats.NewRegistry(), cfg.Compare, logg))
		mgr.Register(mockdata.NewFeature(mockdata.NewFakeProvider(0), store, logg))
		mgr.Register(dates.NewFeature(store, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("storage", store.Location()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// ensureStructure creates missing store folders. Failures are logged and left to the health check.
func ensureStructure(ctx context.Context, store storage.Store, logg *zap.Logger) {
	missing, err := checks.CheckStructure(ctx, store)
	if err != nil {
		logg.Warn("Storage layout check failed", zap.Error(err))
		return
	}
	if err := checks.FixStructure(ctx, store, logg, missing); err != nil {
		logg.Warn("Failed to create storage folders", zap.Error(err))
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
