package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomelens/genomelens/internal/genome"
)

func parseSample(t *testing.T) *genome.Collection {
	t.Helper()
	input := strings.Join([]string{
		"rs1\t1\t100\tAA",
		"rs2\t1\t200\tAG",
		"rs3\t2\t300\tAA",
		"rs4\tX\t400\t--",
		"rs5\tMT\t50\tT",
		"rs6\t2\t500\tCT",
		"rs7\t1\t600\t--",
	}, "\n") + "\n"

	res, err := genome.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, res.Warnings)
	return res.Records
}

func TestSummarize(t *testing.T) {
	s := Summarize(parseSample(t))

	assert.Equal(t, 7, s.Total)
	assert.Equal(t, 2, s.NoCalls)
	assert.Equal(t, 5, s.Genotyped())
	assert.Equal(t, 2, s.Homozygous)
	assert.Equal(t, 2, s.Heterozygous)
}

func TestSummarize_TotalsReconcile(t *testing.T) {
	s := Summarize(parseSample(t))

	assert.Equal(t, s.Total, s.Genotyped()+s.NoCalls)

	// Haploid calls are genotyped but neither homozygous nor heterozygous.
	diploid := s.Homozygous + s.Heterozygous
	assert.Equal(t, s.Genotyped()-1, diploid, "one haploid MT call")

	chromTotal := 0
	for _, cc := range s.ByChromosome {
		chromTotal += cc.Count
	}
	assert.Equal(t, s.Total, chromTotal)

	genoTotal := 0
	for _, gc := range s.Genotypes {
		genoTotal += gc.Count
	}
	assert.Equal(t, s.Total, genoTotal)
}

func TestSummarize_ChromosomeOrder(t *testing.T) {
	s := Summarize(parseSample(t))

	var chroms []genome.Chromosome
	for _, cc := range s.ByChromosome {
		chroms = append(chroms, cc.Chromosome)
	}
	assert.Equal(t, []genome.Chromosome{"1", "2", "X", "MT"}, chroms)

	assert.Equal(t, 3, s.ByChromosome[0].Count)
	assert.Equal(t, 2, s.ByChromosome[1].Count)
}

func TestSummarize_GenotypeCounts(t *testing.T) {
	s := Summarize(parseSample(t))

	// Most common first; ties break lexically.
	require.NotEmpty(t, s.Genotypes)
	assert.Equal(t, GenotypeCount{Genotype: "--", Count: 2}, s.Genotypes[0])
	assert.Equal(t, GenotypeCount{Genotype: "AA", Count: 2}, s.Genotypes[1])

	top := s.TopGenotypes(2)
	assert.Len(t, top, 2)

	all := s.TopGenotypes(100)
	assert.Len(t, all, len(s.Genotypes), "n larger than distinct genotypes")
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(genome.NewCollection())

	assert.Zero(t, s.Total)
	assert.Zero(t, s.NoCalls)
	assert.Empty(t, s.ByChromosome)
	assert.Empty(t, s.TopGenotypes(10))
}
