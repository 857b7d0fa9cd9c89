package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genomelens/genomelens/internal/report"
)

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <genome-file> <rsid>...",
		Short: "Look up markers by id",
		Example: `  genomelens lookup genome.txt rs4680
  genomelens lookup genome.txt rs429358 rs7412`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := parseGenome(args[0])
			if err != nil {
				return err
			}

			dw := report.NewDumpWriter(cmd.OutOrStdout())
			if err := dw.WriteHeader(); err != nil {
				return err
			}

			missing := 0
			for _, id := range args[1:] {
				rec, ok := res.Records.ByID(id)
				if !ok {
					fmt.Fprintf(os.Stderr, "%s: not found\n", id)
					missing++
					continue
				}
				if err := dw.Write(rec); err != nil {
					return err
				}
			}
			if err := dw.Flush(); err != nil {
				return err
			}

			if missing == len(args[1:]) {
				return fmt.Errorf("none of the requested markers were found")
			}
			return nil
		},
	}

	return cmd
}
