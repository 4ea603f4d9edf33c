package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crosswalklabs/crosswalk"
	"github.com/crosswalklabs/crosswalk/internal/cmd/output"
	"github.com/crosswalklabs/crosswalk/pkg/errors"
	"github.com/crosswalklabs/crosswalk/pkg/logging"
	"github.com/crosswalklabs/crosswalk/pkg/tables"
)

var (
	inputFormat   string
	outputFormat  string
	outputPath    string
	rowPreserving bool
	workers       int
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate [file]",
	Short: "Consolidate a table of identifier records",
	Long: `Consolidate reads a tabular dataset (CSV or YAML), resolves rows that
describe the same entity via shared identifier values, and writes one
canonical record per entity. Pass "-" (or no argument) to read stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConsolidate,
}

func init() {
	consolidateCmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: csv or yaml (default: by file extension)")
	consolidateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: table, csv, json or yaml (default: auto)")
	consolidateCmd.Flags().StringVarP(&outputPath, "out", "o", "", "output file (default: stdout)")
	consolidateCmd.Flags().BoolVar(&rowPreserving, "row-preserving", false, "emit one output row per input row instead of one per entity")
	consolidateCmd.Flags().IntVar(&workers, "workers", 0, "canonicalization workers (default: number of CPUs)")
	rootCmd.AddCommand(consolidateCmd)
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	table, err := readTable(path)
	if err != nil {
		return err
	}

	opts := []crosswalk.Option{crosswalk.WithRowPreserving(rowPreserving)}
	if workers > 0 {
		opts = append(opts, crosswalk.WithWorkers(workers))
	}

	result, err := crosswalk.Consolidate(cmd.Context(), table, opts...)
	if err != nil {
		return fmt.Errorf("consolidating %s: %w", path, err)
	}

	log := logging.Default()
	log.Info().
		Str("run_id", result.RunID).
		Int("rows_in", result.Stats.Rows).
		Int("entities", result.Stats.Components).
		Int("warnings", len(result.Warnings)).
		Msg("consolidated")

	return writeTable(result.Table)
}

// readTable loads the input table from a file or stdin.
func readTable(path string) (*tables.Table, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.WrapIO("open", path, err)
		}
		defer file.Close()
		reader = file
	}

	switch resolveInputFormat(path) {
	case "yaml":
		return tables.ReadYAML(reader)
	default:
		return tables.ReadCSV(reader)
	}
}

// resolveInputFormat picks the input codec from the flag or file extension.
func resolveInputFormat(path string) string {
	if inputFormat != "" {
		return strings.ToLower(inputFormat)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "csv"
	}
}

// writeTable renders the consolidated table to the output destination.
func writeTable(table *tables.Table) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	var writer io.Writer = os.Stdout
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return errors.WrapIO("create", outputPath, err)
		}
		defer file.Close()
		writer = file
		if format == "" {
			format = output.FormatCSV
		}
	}
	if format == "" {
		format = output.DetectFormat("")
	}

	return output.NewFormatter(format).Format(writer, table)
}
