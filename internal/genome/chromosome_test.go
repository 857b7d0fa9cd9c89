package genome

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChromosome_IsRecognized(t *testing.T) {
	recognized := []Chromosome{"1", "7", "22", "X", "Y", "MT"}
	for _, c := range recognized {
		assert.True(t, c.IsRecognized(), "%s", c)
	}

	unrecognized := []Chromosome{"0", "23", "25", "chr1", "mt", "PAR1", ""}
	for _, c := range unrecognized {
		assert.False(t, c.IsRecognized(), "%s", c)
	}
}

func TestChromosome_RankOrder(t *testing.T) {
	chroms := []Chromosome{"MT", "X", "2", "Y", "10", "1", "22"}
	sort.Slice(chroms, func(i, j int) bool {
		return chroms[i].Rank() < chroms[j].Rank()
	})

	assert.Equal(t, []Chromosome{"1", "2", "10", "22", "X", "Y", "MT"}, chroms)
}

func TestChromosome_RankUnrecognizedLast(t *testing.T) {
	assert.Greater(t, Chromosome("PAR1").Rank(), ChromosomeMT.Rank())
	assert.Greater(t, Chromosome("0").Rank(), Chromosome("22").Rank())
}

func TestMapNumericSex(t *testing.T) {
	tests := []struct {
		in   Chromosome
		want Chromosome
	}{
		{"23", ChromosomeX},
		{"24", ChromosomeY},
		{"25", ChromosomeMT},
		{"22", "22"},
		{"X", "X"},
		{"PAR1", "PAR1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapNumericSex(tt.in), "%s", tt.in)
	}
}
