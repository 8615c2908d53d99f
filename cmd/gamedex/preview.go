package main

import (
	"fmt"

	"gamedex/internal/config"
	"gamedex/internal/table"

	"github.com/spf13/cobra"
)

var previewRows int

// previewCmd loads the input CSV and prints its head without touching the
// API. Useful for checking the title column before paying for a run.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show row count and the first rows of the input CSV",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input CSV path (default Game_Thumbnail.csv)")
	previewCmd.Flags().IntVarP(&previewRows, "rows", "n", 5, "Number of rows to show")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	tbl, err := table.Load(cfg.Input)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d rows\n%s\n", cfg.Input, tbl.Len(), tbl.Preview(previewRows))
	if _, ok := tbl.ColumnIndex(cfg.TitleColumn); !ok {
		fmt.Printf("warning: no %q column; enrich would fail on this file\n", cfg.TitleColumn)
	}
	return nil
}
