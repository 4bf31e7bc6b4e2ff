package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nusri7/sopcalc/engine"
)

// Embedded default configuration (from .sopcalc.yaml)
const defaultConfigYAML = `
metrics:
  canonical:
    - Revenues
    - Cost of Sales
    - Gross Profit
    - Operating Expenses
    - Operating Profit
    - Finance Costs
    - Profit Before Tax
    - Tax Expense
    - Net Profit
    - Total Assets
    - Total Liabilities
    - Total Equity
    - Cash and Cash Equivalents
    - Net Cash from Operating Activities
engine:
  # Legacy behavior: an unresolvable formula base starts at 0 instead of
  # invalidating the entry. Off by default.
  zero_base_fallback: false
server:
  port: "8080"`

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "sopcalc [dataset.json]",
		Short: "Derives summary metrics from extracted financial statements",
		Long: `sopcalc resolves canonical summary metrics (Revenues, Net Profit, ...)
from a table of extracted statement line items, applies user-authored
manual formulas on top of them, and prints the merged summary table
with an audit trail per computed value.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				viper.Set("target", args[0])
				handler(deriveCmd, []string{})
				return
			}
			cmd.Help()
		},
	}
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default is ./.sopcalc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogging() {
	if !verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetFlags(log.Ltime | log.Lmsgprefix)
		log.SetPrefix("INFO: ")
	}
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory and home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Add config paths in order of priority
		viper.AddConfigPath(".")  // First check current directory
		viper.AddConfigPath(home) // Then check home directory
		viper.SetConfigName(".sopcalc")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found, use embedded default configuration
			if err := viper.ReadConfig(bytes.NewBufferString(defaultConfigYAML)); err != nil {
				fmt.Printf("Error loading embedded configuration: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}

// engineOptions assembles the engine configuration from viper.
func engineOptions() engine.Options {
	return engine.Options{
		Canonical:        viper.GetStringSlice("metrics.canonical"),
		ZeroBaseFallback: viper.GetBool("engine.zero_base_fallback"),
	}
}
