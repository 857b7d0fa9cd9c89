package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/genomelens/genomelens/internal/genome"
	"github.com/genomelens/genomelens/internal/report"
	"github.com/genomelens/genomelens/internal/stats"
)

func newReportCmd() *cobra.Command {
	var (
		dump         bool
		chrom        string
		showWarnings bool
	)

	cmd := &cobra.Command{
		Use:   "report <genome-file>",
		Short: "Parse a raw export and print a summary report",
		Long: `Parse a raw genome export and print summary statistics: total markers,
no-call rate, chromosome distribution, and the most common genotypes.
With --dump the parsed records are printed back out tab-delimited instead.`,
		Example: `  genomelens report genome.txt
  genomelens report --dump --chromosome MT genome.txt
  cat genome.txt | genomelens report -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := parseGenome(args[0])
			if err != nil {
				return err
			}
			reportWarnings(res.Warnings, showWarnings)

			if dump {
				dw := report.NewDumpWriter(cmd.OutOrStdout())
				if err := dw.WriteHeader(); err != nil {
					return err
				}
				if chrom != "" {
					err = dw.WriteChromosome(res.Records, genome.Chromosome(chrom))
				} else {
					err = dw.WriteAll(res.Records)
				}
				if err != nil {
					return err
				}
				return dw.Flush()
			}

			if chrom != "" {
				return fmt.Errorf("--chromosome requires --dump")
			}

			if res.Records.Len() == 0 {
				fmt.Fprintln(os.Stderr, "No markers found in input")
			}

			sw := report.NewSummaryWriter(cmd.OutOrStdout(), viper.GetInt("report.top-genotypes"))
			return sw.Write(stats.Summarize(res.Records), args[0])
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print records tab-delimited instead of the summary")
	cmd.Flags().StringVar(&chrom, "chromosome", "", "restrict --dump to one chromosome (e.g. 7, X, MT)")
	cmd.Flags().BoolVar(&showWarnings, "warnings", false, "print every skipped-line warning")

	return cmd
}
