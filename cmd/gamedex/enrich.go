package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"gamedex/internal/config"
	"gamedex/internal/enrich"
	"gamedex/internal/llm"
	"gamedex/internal/table"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputPath   string
	outputPath  string
	model       string
	titleColumn string
	timeout     time.Duration
)

// enrichCmd runs the full pipeline: load, enrich, merge, write.
var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich the input CSV with genre, description, and player mode",
	Long: `Runs the enrichment pipeline over the input CSV:
  1. Load the table (the title column must exist)
  2. Query Gemini three times per row: genre, description, player mode
  3. Merge the generated columns (all-or-nothing on row-count parity)
  4. Write the enriched CSV

A transient failure on one field never aborts the run; the field is
recorded as "Error" and processing continues with the next field.`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input CSV path (default Game_Thumbnail.csv)")
	enrichCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV path (default enhanced_game_data.csv)")
	enrichCmd.Flags().StringVarP(&model, "model", "m", "", "Gemini model (default gemini-2.0-flash-lite)")
	enrichCmd.Flags().StringVar(&titleColumn, "title-column", "", "Name of the title column (default game_title)")
	enrichCmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request timeout (default 2m)")
}

func runEnrich(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	tbl, err := table.Load(cfg.Input)
	if err != nil {
		return err
	}
	if _, ok := tbl.ColumnIndex(cfg.TitleColumn); !ok {
		return fmt.Errorf("input %s has no %q column", cfg.Input, cfg.TitleColumn)
	}
	fmt.Printf("Loaded %s (%d rows)\n%s\n", cfg.Input, tbl.Len(), tbl.Preview(5))

	llmCfg := llm.DefaultGeminiConfig(cfg.LLM.APIKey)
	if cfg.LLM.Model != "" {
		llmCfg.Model = cfg.LLM.Model
	}
	llmCfg.Timeout = cfg.LLM.TimeoutDuration()

	client, err := llm.NewGeminiClient(ctx, llmCfg)
	if err != nil {
		return err
	}
	logger.Info("configured Gemini client", zap.String("model", client.GetModel()))

	afterGenre, afterDescription, afterPlayerMode := cfg.Pacing.Delays()
	enricher := enrich.New(client, logger,
		enrich.WithPacing(afterGenre, afterDescription, afterPlayerMode))

	if err := enricher.EnrichTable(ctx, tbl, cfg.TitleColumn); err != nil {
		return err
	}

	if err := tbl.Write(cfg.Output); err != nil {
		logger.Error("failed to save enriched table", zap.String("path", cfg.Output), zap.Error(err))
		return err
	}

	fmt.Printf("\nEnhanced data saved to %s\n", cfg.Output)
	return nil
}

// applyFlagOverrides lets command-line flags win over config file values.
func applyFlagOverrides(cfg *config.Config) {
	if inputPath != "" {
		cfg.Input = inputPath
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}
	if model != "" {
		cfg.LLM.Model = model
	}
	if titleColumn != "" {
		cfg.TitleColumn = titleColumn
	}
	if timeout > 0 {
		cfg.LLM.Timeout = timeout.String()
	}
	if apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
}
