package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/genomelens/genomelens/internal/genome"
	"github.com/genomelens/genomelens/internal/report"
	"github.com/genomelens/genomelens/internal/stats"
	"github.com/genomelens/genomelens/internal/store"
)

func newExportCmd() *cobra.Command {
	var (
		dbPath    string
		statsPath string
	)

	cmd := &cobra.Command{
		Use:   "export <genome-file>",
		Short: "Export parsed markers to DuckDB or a statistics file",
		Long: `Export a parsed raw export for later use: load all markers into a
DuckDB database for ad-hoc SQL queries, write the summary statistics to a
text file, or both.`,
		Example: `  genomelens export genome.txt --db genome.duckdb
  genomelens export genome.txt --stats-out genome_stats.txt
  duckdb genome.duckdb "SELECT chromosome, COUNT(*) FROM markers GROUP BY chromosome"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" && statsPath == "" {
				return fmt.Errorf("nothing to export: use --db and/or --stats-out")
			}

			res, err := parseGenome(args[0])
			if err != nil {
				return err
			}
			reportWarnings(res.Warnings, false)

			if dbPath != "" {
				if err := exportDB(dbPath, res); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "Wrote %d markers to %s\n", res.Records.Len(), dbPath)
			}

			if statsPath != "" {
				f, err := os.Create(statsPath)
				if err != nil {
					return fmt.Errorf("create stats file: %w", err)
				}
				defer f.Close()

				sw := report.NewSummaryWriter(f, viper.GetInt("report.top-genotypes"))
				if err := sw.Write(stats.Summarize(res.Records), args[0]); err != nil {
					return fmt.Errorf("write stats file: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Statistics written to %s\n", statsPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB database file to write markers to")
	cmd.Flags().StringVar(&statsPath, "stats-out", "", "text file to write summary statistics to")

	return cmd
}

func exportDB(path string, res *genome.Result) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Clear(); err != nil {
		return fmt.Errorf("clear existing markers: %w", err)
	}
	return s.WriteMarkers(res.Records)
}
