package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stocktake-manager/core/config"
	"stocktake-manager/core/database"
	"stocktake-manager/core/loader"
	"stocktake-manager/core/logger"
	"stocktake-manager/core/middleware/auth"
	"stocktake-manager/core/middleware/rayid"
	"stocktake-manager/core/storage"

	"stocktake-manager/feature/catalog"
	"stocktake-manager/feature/report"
	"stocktake-manager/feature/stocktake"
	"stocktake-manager/feature/stocktake/variance"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "stocktake-manager/docs/swagger"
)

// @title Stock Take Manager API
// @version 1.0
// @description API for ingesting warehouse stock take counts and reconciling them against book quantities.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the stock take manager server",
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
		// Without it the service still ingests and reconciles; book
		// quantities then come from uploaded journals only.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional catalog database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to catalog database", zap.String("database", cfg.Database.Name))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		// 5. Initialize Storage and the staging store
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		staging := stocktake.NewObjectStaging(store, cfg.Storage.Bucket, cfg.Storage.StagingPrefix)
		if err := staging.Init(context.Background()); err != nil {
			logg.Fatal("Failed to initialize staging bucket", zap.Error(err))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		catalogFeature := catalog.NewFeature(db, logg)
		var cat variance.Catalog
		if catalogFeature.IsEnabled() {
			cat = catalogFeature.Service
		}
		stocktakeFeature := stocktake.NewFeature(staging, cat, logg)

		mgr.Register(catalogFeature)
		mgr.Register(stocktakeFeature)
		mgr.Register(report.NewFeature(stocktakeFeature.Service, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
