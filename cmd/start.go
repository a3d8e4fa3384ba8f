package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/config"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/database"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/loader"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/logger"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/middleware/rayid"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/server"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/session"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/storage"
	"github.com/cashpipeplusplus/generic-webdriver-server/feature/webdriver"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/cashpipeplusplus/generic-webdriver-server/docs/swagger"
)

// @title Generic WebDriver Server API
// @version 1.0
// @description WebDriver protocol subset served by pluggable device backends.
// @host localhost:4444
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the WebDriver server",
	Long:  `Starts the HTTP listener and serves the WebDriver protocol endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if !cfg.Server.IsValidPort() {
			log.Fatalf("Invalid listen port %q: must be 1-65535", cfg.Server.Port)
		}
		if !cfg.Server.IsValidBackend() {
			log.Fatalf("Unknown backend %q", cfg.Server.Backend)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Audit Database (Optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional audit database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to audit database")
			}
		}

		// 4. Initialize Screenshot Archive Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			store = client
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Graceful shutdown channel; the /shutdown endpoint feeds it too.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		stop := func() { quit <- syscall.SIGTERM }

		// 6. Initialize the Backend
		var hooks session.Hooks
		switch cfg.Server.Backend {
		case server.BackendNoop:
			hooks = session.NoopHooks{Logger: logg}
		}
		backend := session.NewManager(hooks, cfg.Session.IdleTimeout(), logg)

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

		// 3. Swagger Documentation (registered before the protocol catch-all)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 7. Register Features
		mgr := loader.NewManager()
		feat := webdriver.NewFeature(backend, store, cfg.Storage.Bucket, logg, db, stop)
		mgr.Register(feat)

		if err := feat.Prepare(context.Background()); err != nil {
			logg.Fatal("Failed to prepare webdriver feature", zap.Error(err))
		}

		// The webdriver feature registers the unknown-command catch-all, so
		// it loads last.
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("backend", cfg.Server.Backend),
				zap.Duration("idle_timeout", cfg.Session.IdleTimeout()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		<-quit
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
