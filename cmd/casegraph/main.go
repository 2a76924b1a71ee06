package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/casework/casegraph/cmd/casegraph/commands"
	"github.com/casework/casegraph/config"
	"github.com/casework/casegraph/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "casegraph",
	Short: "casegraph - CASE investigation graph builder",
	Long: `casegraph - Build CASE investigation graphs from line-oriented configs.

casegraph reads a construction config, validates every declared object
against the class catalog, and serializes the resulting graph as JSON-LD.

Available commands:
  build   - Construct and serialize a graph from a config file
  classes - List the classes the catalog knows how to construct
  version - Show version information

Examples:
  casegraph build evidence.config        # Build evidence.json next to the input
  casegraph build -o /tmp/out.json f.config
  casegraph classes --prefix propbundle_ # List property bundle classes`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logger.SetVerbosity(verbosity)
		return nil
	},
}

// loadConfig resolves the effective configuration: an explicit --config
// file wins, otherwise the usual cascade applies.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a casegraph config file (overrides the cascade)")

	rootCmd.AddCommand(commands.BuildCmd)
	rootCmd.AddCommand(commands.ClassesCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
