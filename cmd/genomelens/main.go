// Package main provides the genomelens command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/genomelens/genomelens/internal/genome"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logger is installed by the root command; subcommands and parsers share it.
var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "genomelens",
		Short: "Inspect a raw consumer-genomics export",
		Long: `genomelens reads a raw consumer-genomics export (a 23andMe-style
tab-delimited file of rsid, chromosome, position, genotype) and turns it
into a human-readable report. Malformed lines are skipped with warnings
rather than aborting the whole file.`,
		Example: `  # Summary report
  genomelens report genome.txt

  # Look up specific markers
  genomelens lookup genome.txt rs4680 rs1815739

  # Load markers into DuckDB for ad-hoc SQL
  genomelens export genome.txt --db genome.duckdb`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
				logger = l
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped lines and progress")
	root.PersistentFlags().Bool("numeric-sex-chromosomes", false, "map chromosome tokens 23/24/25 to X/Y/MT")
	viper.BindPFlag("parse.numeric-sex-chromosomes", root.PersistentFlags().Lookup("numeric-sex-chromosomes"))

	root.AddCommand(newReportCmd())
	root.AddCommand(newLookupCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads ~/.genomelens.yaml if present.
func initConfig() error {
	viper.SetDefault("report.top-genotypes", 10)

	home, err := os.UserHomeDir()
	if err != nil {
		return nil // no home directory, flags and defaults only
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".genomelens")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// parseGenome opens and fully parses a raw export, applying the configured
// parse options. Use "-" to read stdin.
func parseGenome(path string) (*genome.Result, error) {
	parser, err := genome.NewParser(path)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	parser.SetNumericSexMapping(viper.GetBool("parse.numeric-sex-chromosomes"))
	parser.SetLogger(logger)

	return parser.ParseAll()
}

// reportWarnings prints skipped-line warnings to stderr, either in full or
// as a one-line count.
func reportWarnings(warnings []genome.Warning, full bool) {
	if len(warnings) == 0 {
		return
	}
	if full {
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Skipped %d problem line(s); rerun with --warnings for details\n", len(warnings))
}
