package cmd

import (
	"fmt"
	"os"

	"market-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "market-manager",
	Short: "Market Manager Service",
	Long: `Market Manager serves normalized, display-ready shop and trade data
for a Minecraft survival server. It reads the Shopkeepers save file and the
plugin-written stock file, resolves item names and icons, and exposes the
result over HTTP for the website frontend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format so CLI errors stay readable outside the log pipeline
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
