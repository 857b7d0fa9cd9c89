// Package report provides human-readable and tab-delimited renderers for
// parsed genome data.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/genomelens/genomelens/internal/stats"
)

// SummaryWriter renders a summary statistics report for a non-technical
// reader: totals, no-call rate, chromosome distribution with bars, and the
// most common genotypes.
type SummaryWriter struct {
	w            *bufio.Writer
	topGenotypes int
}

// NewSummaryWriter creates a summary report writer. topGenotypes controls
// how many of the most common genotype strings are listed.
func NewSummaryWriter(w io.Writer, topGenotypes int) *SummaryWriter {
	return &SummaryWriter{
		w:            bufio.NewWriter(w),
		topGenotypes: topGenotypes,
	}
}

// Write renders the full report for one summary. source names the input
// file in the report title.
func (sw *SummaryWriter) Write(s *stats.Summary, source string) error {
	sw.rule("=")
	sw.line("GENOME SUMMARY")
	if source != "" {
		sw.line("File: %s", source)
	}
	sw.rule("=")

	sw.line("")
	sw.line("Total markers: %d", s.Total)
	if s.Total > 0 {
		sw.line("Successfully genotyped: %d (%.2f%%)", s.Genotyped(), pct(s.Genotyped(), s.Total))
		sw.line("No-calls (--): %d (%.2f%%)", s.NoCalls, pct(s.NoCalls, s.Total))
	}

	sw.line("")
	sw.rule("-")
	sw.line("CHROMOSOME DISTRIBUTION")
	sw.rule("-")
	for _, cc := range s.ByChromosome {
		p := pct(cc.Count, s.Total)
		bar := strings.Repeat("█", int(p*2))
		sw.line("Chr %3s: %8d markers (%5.2f%%) %s", cc.Chromosome, cc.Count, p, bar)
	}

	if s.Homozygous+s.Heterozygous > 0 {
		sw.line("")
		sw.rule("-")
		sw.line("GENOTYPE DISTRIBUTION")
		sw.rule("-")
		diploid := s.Homozygous + s.Heterozygous
		sw.line("Homozygous: %d (%.2f%%)", s.Homozygous, pct(s.Homozygous, diploid))
		sw.line("Heterozygous: %d (%.2f%%)", s.Heterozygous, pct(s.Heterozygous, diploid))
	}

	if top := s.TopGenotypes(sw.topGenotypes); len(top) > 0 {
		sw.line("")
		sw.rule("-")
		sw.line("TOP %d MOST COMMON GENOTYPES", len(top))
		sw.rule("-")
		for _, gc := range top {
			sw.line("%3s: %8d (%5.2f%%)", gc.Genotype, gc.Count, pct(gc.Count, s.Total))
		}
	}

	return sw.w.Flush()
}

func (sw *SummaryWriter) line(format string, args ...any) {
	fmt.Fprintf(sw.w, format+"\n", args...)
}

func (sw *SummaryWriter) rule(ch string) {
	sw.line("%s", strings.Repeat(ch, 60))
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
