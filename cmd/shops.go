package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"market-manager/core/config"
	"market-manager/core/logger"
	"market-manager/feature/shops"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// shopsCmd dumps the parsed shop list, or a single shop, as JSON.
var shopsCmd = &cobra.Command{
	Use:   "shops [uuid]",
	Short: "Dump parsed shops from the save file",
	Long:  `Parses the Shopkeepers save file and prints the shop records as JSON. With a UUID argument, prints only that shop.`,
	Args:  cobra.MaximumNArgs(1),
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

		svc := shops.NewService(cfg.Market.SaveFile, logg)

		var out any
		if len(args) == 1 {
			shop := svc.ShopByUUID(args[0])
			if shop == nil {
				logg.Fatal("Shop not found", zap.String("uuid", args[0]))
			}
			out = shop
		} else {
			out = svc.LoadShops()
		}

		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			logg.Fatal("Failed to encode shops", zap.Error(err))
		}
		fmt.Println(string(encoded))
	},
}

func init() {
	RootCmd.AddCommand(shopsCmd)
}
