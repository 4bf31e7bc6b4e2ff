package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nusri7/sopcalc/engine"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derives the summary metric table from a dataset",
	Long: `Derives the merged summary metric table from an extracted dataset.
Baseline values pass through as supplied; metrics with manual
calculation entries are evaluated and carry their formula trail.`,
	Run: handler,
}

func handler(cmd *cobra.Command, args []string) {
	target := viper.GetString("target")
	log.Println("\U0001f4c4 Deriving summary from ", target)

	ws, err := engine.LoadFile(target, engineOptions())
	cobra.CheckErr(err)

	as_json, _ := json.Marshal(ws.Summary())
	fmt.Println(string(as_json))
}

func init() {
	rootCmd.AddCommand(deriveCmd)
	deriveCmd.Flags().StringP("file", "f", "", "Dataset JSON file to derive the summary from")
	viper.BindPFlag("target", deriveCmd.Flags().Lookup("file"))
}
