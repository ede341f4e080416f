package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"datadiff/core/config"
	"datadiff/core/logger"
	"datadiff/feature/mockdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateCmd writes a mock dataset described by a schema file.
var generateCmd = &cobra.Command{
	Use:   "generate <schema.json>",
	Short: "Generate a mock dataset from a field schema",
	Long: `Reads a schema ({"fields": [...], "rowCount": n}) and writes the generated rows.
The file name defaults to test-data-<timestamp>.<format>.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		seed, _ := cmd.Flags().GetInt64("seed")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		format, err := mockdata.ParseFormat(formatName)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read schema: %w", err)
		}
		var req mockdata.Request
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("failed to parse schema: %w", err)
		}

		ds, err := mockdata.NewGenerator(mockdata.NewFakeProvider(seed)).Generate(req)
		if err != nil {
			return err
		}

		data, err := mockdata.Encode(ds, format)
		if err != nil {
			return err
		}

		if out == "" {
			out = format.FileName(time.Now())
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}

		logg.Info("Mock data written", zap.String("file", out), zap.Int("rows", len(ds.Rows)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("format", "csv", "Output format (csv, json, xlsx)")
	generateCmd.Flags().String("out", "", "Output file")
	generateCmd.Flags().Int64("seed", 0, "Random seed (0 picks one)")
}
