// Package stats aggregates summary statistics over a parsed genome.
package stats

import (
	"sort"

	"github.com/genomelens/genomelens/internal/genome"
)

// ChromosomeCount is the number of markers observed on one chromosome.
type ChromosomeCount struct {
	Chromosome genome.Chromosome
	Count      int
}

// GenotypeCount is the number of markers observed with one genotype string.
type GenotypeCount struct {
	Genotype string
	Count    int
}

// Summary holds aggregate statistics over a record collection.
type Summary struct {
	Total        int // all records
	NoCalls      int // records with no determined genotype
	Homozygous   int // diploid calls with identical alleles
	Heterozygous int // diploid calls with differing alleles

	// ByChromosome lists per-chromosome counts in chromosome rank order
	// (autosomes, X, Y, MT, then unrecognized labels).
	ByChromosome []ChromosomeCount

	// Genotypes lists genotype tallies, most common first; ties break
	// lexically so the order is deterministic.
	Genotypes []GenotypeCount
}

// Summarize computes summary statistics over a collection in one pass.
func Summarize(c *genome.Collection) *Summary {
	s := &Summary{}

	chromCounts := make(map[genome.Chromosome]int)
	genoCounts := make(map[string]int)

	for r := range c.All() {
		s.Total++
		chromCounts[r.Chromosome]++
		genoCounts[r.Genotype.String()]++

		switch {
		case r.Genotype.IsNoCall():
			s.NoCalls++
		case r.Genotype.IsHomozygous():
			s.Homozygous++
		case r.Genotype.IsHeterozygous():
			s.Heterozygous++
		}
	}

	for _, chrom := range c.Chromosomes() {
		s.ByChromosome = append(s.ByChromosome, ChromosomeCount{
			Chromosome: chrom,
			Count:      chromCounts[chrom],
		})
	}

	for g, n := range genoCounts {
		s.Genotypes = append(s.Genotypes, GenotypeCount{Genotype: g, Count: n})
	}
	sort.Slice(s.Genotypes, func(i, j int) bool {
		if s.Genotypes[i].Count != s.Genotypes[j].Count {
			return s.Genotypes[i].Count > s.Genotypes[j].Count
		}
		return s.Genotypes[i].Genotype < s.Genotypes[j].Genotype
	})

	return s
}

// Genotyped returns the number of records with a determined genotype.
func (s *Summary) Genotyped() int {
	return s.Total - s.NoCalls
}

// TopGenotypes returns the n most common genotype strings.
func (s *Summary) TopGenotypes(n int) []GenotypeCount {
	if n > len(s.Genotypes) {
		n = len(s.Genotypes)
	}
	return s.Genotypes[:n]
}
