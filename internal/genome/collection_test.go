package genome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGenotype(t *testing.T, s string) Genotype {
	t.Helper()
	g, err := ParseGenotype(s)
	require.NoError(t, err)
	return g
}

func testCollection(t *testing.T) *Collection {
	t.Helper()
	c := NewCollection()
	c.add(MarkerRecord{ID: "rs1", Chromosome: "1", Position: 100, Genotype: mustGenotype(t, "AA")})
	c.add(MarkerRecord{ID: "rs2", Chromosome: "2", Position: 200, Genotype: mustGenotype(t, "AG")})
	c.add(MarkerRecord{ID: "rs3", Chromosome: "1", Position: 300, Genotype: mustGenotype(t, "--")})
	c.add(MarkerRecord{ID: "rs4", Chromosome: "MT", Position: 50, Genotype: mustGenotype(t, "T")})
	return c
}

func TestCollection_ByID(t *testing.T) {
	c := testCollection(t)

	rec, ok := c.ByID("rs2")
	require.True(t, ok)
	assert.Equal(t, Chromosome("2"), rec.Chromosome)
	assert.Equal(t, int64(200), rec.Position)

	_, ok = c.ByID("rs999")
	assert.False(t, ok)
}

func TestCollection_AllOrder(t *testing.T) {
	c := testCollection(t)

	var ids []string
	for r := range c.All() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"rs1", "rs2", "rs3", "rs4"}, ids)
}

func TestCollection_AllRestartable(t *testing.T) {
	c := testCollection(t)
	seq := c.All()

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 4, count())
	assert.Equal(t, 4, count(), "ranging again should replay from the start")
}

func TestCollection_ByChromosome(t *testing.T) {
	c := testCollection(t)

	var ids []string
	for r := range c.ByChromosome("1") {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"rs1", "rs3"}, ids)

	ids = nil
	for r := range c.ByChromosome("7") {
		ids = append(ids, r.ID)
	}
	assert.Empty(t, ids)
}

func TestCollection_DuplicateOverwritesInPlace(t *testing.T) {
	c := testCollection(t)

	replaced := c.add(MarkerRecord{ID: "rs2", Chromosome: "2", Position: 200, Genotype: mustGenotype(t, "GG")})
	assert.True(t, replaced)
	assert.Equal(t, 4, c.Len())

	rec, ok := c.ByID("rs2")
	require.True(t, ok)
	assert.Equal(t, "GG", rec.Genotype.String(), "last write wins")

	var ids []string
	for r := range c.All() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"rs1", "rs2", "rs3", "rs4"}, ids, "overwritten record keeps its position")
}

func TestCollection_Chromosomes(t *testing.T) {
	c := testCollection(t)
	c.add(MarkerRecord{ID: "rs5", Chromosome: "X", Position: 10, Genotype: mustGenotype(t, "A")})

	assert.Equal(t, []Chromosome{"1", "2", "X", "MT"}, c.Chromosomes())
}

func TestCollection_Empty(t *testing.T) {
	c := NewCollection()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Chromosomes())
	for range c.All() {
		t.Fatal("empty collection should yield nothing")
	}
}
