package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nusri7/sopcalc/api"
)

var (
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP API server",
	Long:  `Starts the HTTP API server that accepts dataset JSON and returns the derived summary table.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure logging for server mode
		log.SetOutput(os.Stdout)
		log.SetFlags(log.Ltime | log.Lmsgprefix)

		// Create API server with configuration
		cfg := api.DefaultConfig()
		if servePort != "" {
			cfg.Port = ":" + servePort
		} else if port := viper.GetString("server.port"); port != "" {
			cfg.Port = ":" + port
		}
		cfg.LogPrefix = "SERVER: "
		cfg.Canonical = engineOptions().Canonical
		cfg.ZeroBaseFallback = engineOptions().ZeroBaseFallback

		server := api.New(cfg)
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to run the API server on")
}
