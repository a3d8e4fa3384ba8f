package cmd

import (
	"fmt"
	"os"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "generic-webdriver-server",
	Short: "Generic WebDriver Server",
	Long: `Generic WebDriver Server implements a subset of the WebDriver wire
protocol over pluggable device backends. It owns protocol compliance,
response shaping, and single-session lifecycle management; backends supply
the navigation, screenshot, and close behavior.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
