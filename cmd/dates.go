package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"datadiff/core/config"
	"datadiff/core/logger"
	"datadiff/feature/dates"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// datesCmd rewrites the dates of a local CSV file.
var datesCmd = &cobra.Command{
	Use:   "dates <input.csv>",
	Short: "Rewrite every dd-mm-yyyy or dd/mm/yyyy date of a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		out, _ := cmd.Flags().GetString("out")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		target, err := dates.ParseDate(date)
		if err != nil {
			return err
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()

		result, err := dates.Rewrite(filepath.Base(args[0]), file, target)
		if err != nil {
			return err
		}

		if out == "" {
			out = filepath.Join(filepath.Dir(args[0]), result.Name)
		}
		if err := os.WriteFile(out, result.Data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}

		logg.Info("Dates updated", zap.String("file", out), zap.Int("updated", result.Updated))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(datesCmd)

	datesCmd.Flags().String("date", "", "New date (dd-mm-yyyy)")
	datesCmd.Flags().String("out", "", "Output file")
	_ = datesCmd.MarkFlagRequired("date")
}
