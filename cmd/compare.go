package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"datadiff/core/config"
	"datadiff/core/database"
	"datadiff/core/diff"
	"datadiff/core/formats"
	"datadiff/core/logger"
	"datadiff/core/storage"
	"datadiff/core/table"
	"datadiff/feature/filediff"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// compareCmd is the parent command for comparisons.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two files or two database tables",
}

// compareFilesCmd compares two local files.
var compareFilesCmd = &cobra.Command{
	Use:   "files <source> <target>",
	Short: "Compare two csv, xlsx or xml files",
	Long: `Compares two files of the same type and prints a summary.
Use --json to print the full cell level report instead.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		svc := filediff.NewService(storage.NewLocalStore(cfg.Storage.Dir), formats.NewRegistry(), cfg.Compare, logg)
		report, err := svc.CompareFiles(args[0], args[1])
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}

		logg.Info("Comparison completed",
			zap.String("source", args[0]),
			zap.String("target", args[1]),
			zap.Duration("execution_time", time.Since(startTime)))

		return printReport(cmd.OutOrStdout(), report, jsonOutput, time.Since(startTime))
	},
}

// compareTablesCmd compares two database tables or queries.
var compareTablesCmd = &cobra.Command{
	Use:   "tables <source> <target>",
	Short: "Compare two tables of the configured database",
	Long: `Loads two tables of the configured database and compares them like tabular files.
With --query the arguments are SELECT statements instead of table names.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")
		asQuery, _ := cmd.Flags().GetBool("query")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		// Connect to database (required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		report, err := compareTables(ctx, db, args[0], args[1], asQuery, cfg.Compare)
		if err != nil {
			return err
		}

		logg.Info("Comparison completed",
			zap.String("source", args[0]),
			zap.String("target", args[1]),
			zap.Duration("execution_time", time.Since(startTime)))

		return printReport(cmd.OutOrStdout(), report, jsonOutput, time.Since(startTime))
	},
}

func compareTables(ctx context.Context, db *gorm.DB, source, target string, asQuery bool, opts diff.Options) (*diff.Report, error) {
	load := func(name string) (*table.Table, error) {
		if asQuery {
			return database.LoadQuery(ctx, db, name)
		}
		return database.LoadTable(ctx, db, name)
	}

	src, err := load(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load source %s: %w", source, err)
	}
	tgt, err := load(target)
	if err != nil {
		return nil, fmt.Errorf("failed to load target %s: %w", target, err)
	}

	return diff.Compare(src, tgt, "table", opts)
}

// printReport writes the report as indented JSON or as summary metrics.
func printReport(w io.Writer, report *diff.Report, jsonOutput bool, elapsed time.Duration) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return nil
	}

	s := report.Summary
	fmt.Fprintln(w, "\n=== Comparison Summary ===")
	fmt.Fprintf(w, "File Type: %s\n", report.FileType)
	fmt.Fprintf(w, "Columns: %d\n", len(report.Columns))
	fmt.Fprintf(w, "Total Rows: %d\n", s.TotalRows)
	fmt.Fprintf(w, "Matching: %d\n", s.MatchingRows)
	fmt.Fprintf(w, "Differing: %d\n", s.DifferingRows)
	fmt.Fprintf(w, "Only In Source: %d\n", s.ExtraRowsInSource)
	fmt.Fprintf(w, "Only In Target: %d\n", s.ExtraRowsInTarget)
	fmt.Fprintf(w, "Execution Time: %s\n", elapsed.String())
	return nil
}

func init() {
	RootCmd.AddCommand(compareCmd)
	compareCmd.AddCommand(compareFilesCmd, compareTablesCmd)

	compareFilesCmd.Flags().Bool("json", false, "Print the full report as JSON")
	compareTablesCmd.Flags().Bool("json", false, "Print the full report as JSON")
	compareTablesCmd.Flags().Bool("query", false, "Treat arguments as SELECT statements")
}
