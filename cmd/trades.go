package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"market-manager/core/config"
	"market-manager/core/logger"
	"market-manager/feature/shops"
	"market-manager/feature/trades"
	"market-manager/feature/trades/itemref"
	"market-manager/feature/trades/registry"
	"market-manager/feature/trades/stock"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tradesCmd dumps the fully enriched available trades as JSON.
var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Dump enriched available trades",
	Long: `Parses the Shopkeepers save file, resolves item identities and stock
levels, and prints the enriched trade records as JSON. The item catalog is
fetched synchronously so the output matches what the API would serve.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			fmt.Printf("Failed to create logger: %v\n", err)
			os.Exit(1)
		}

		shopSvc := shops.NewService(cfg.Market.SaveFile, logg)
		reg := registry.FromFile(cfg.Market.RegistryFile, logg)
		stockCache := stock.NewCache(cfg.Market.StockFile, logg)

		timeout := time.Duration(cfg.Market.ItemApiTimeoutSeconds) * time.Second
		catalog := itemref.NewCache(cfg.Market.ItemApiUrl, timeout, logg)

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		catalog.Populate(ctx)

		svc := trades.NewService(shopSvc, reg, catalog, stockCache, nil, logg)

		result := svc.AvailableTrades()
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logg.Fatal("Failed to encode trades", zap.Error(err))
		}
		fmt.Println(string(encoded))
	},
}

func init() {
	RootCmd.AddCommand(tradesCmd)
}
