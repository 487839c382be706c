package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"market-manager/core/config"
	"market-manager/core/database"
	"market-manager/core/loader"
	"market-manager/core/logger"
	"market-manager/core/middleware/auth"
	"market-manager/core/middleware/rayid"
	"market-manager/feature/shops"
	"market-manager/feature/trades"
	"market-manager/feature/trades/itemref"
	"market-manager/feature/trades/registry"
	"market-manager/feature/trades/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the market manager server",
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

		// 3. Connect to the trade history database (optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, trade history disabled", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to trade history database")
		}

		// 4. Build the shared services and caches
		shopSvc := shops.NewService(cfg.Market.SaveFile, logg)
		reg := registry.FromFile(cfg.Market.RegistryFile, logg)
		stockCache := stock.NewCache(cfg.Market.StockFile, logg)

		catalogTimeout := time.Duration(cfg.Market.ItemApiTimeoutSeconds) * time.Second
		catalog := itemref.NewCache(cfg.Market.ItemApiUrl, catalogTimeout, logg)

		// Fire-and-forget: a slow or dead catalog upstream must not hold up
		// startup. Lookups fall back to formatted type ids until it lands.
		go catalog.Populate(context.Background())

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Feature registration
		mgr := loader.NewManager()
		mgr.Register(shops.NewFeature(shopSvc, logg))
		mgr.Register(trades.NewFeature(shopSvc, reg, catalog, stockCache, db, logg))

		// Middleware: RayID first so everything is traceable
		app.Use(rayid.New())

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

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
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

func init() {
	RootCmd.AddCommand(startCmd)
}
