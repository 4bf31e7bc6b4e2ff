package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nusri7/sopcalc/engine"
	"github.com/Nusri7/sopcalc/integrations/excel"
)

var (
	exportFile string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the summary metric table to an .xlsx workbook",
	Long: `Derives the merged summary metric table from a dataset and writes it
as a plain summary sheet. Values land as display text together with
their provenance and formula trail.

Examples:
  sopcalc export -f dataset.json -o summary.xlsx`,
	Run: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stdout)
		log.SetFlags(log.Ltime | log.Lmsgprefix)

		if exportFile == "" {
			log.Fatal("error: --file/-f is required")
		}
		if exportOut == "" {
			log.Fatal("error: --out/-o is required")
		}

		ws, err := engine.LoadFile(exportFile, engineOptions())
		if err != nil {
			log.Fatalf("Failed to load dataset: %v", err)
		}

		if err := excel.Save(ws.Summary(), exportOut); err != nil {
			log.Fatalf("Failed to write workbook: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Dataset JSON file")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output .xlsx path")
}
