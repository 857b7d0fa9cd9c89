package genome

import (
	"iter"
	"sort"
)

// Collection is an ordered set of marker records keyed by marker id. It is
// built once by the parser and read-only afterward. Iteration order is
// first-successful-parse order; a record overwritten by a duplicate id keeps
// its original position.
type Collection struct {
	records []MarkerRecord
	index   map[string]int
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		index: make(map[string]int),
	}
}

// add inserts a record, overwriting in place on a duplicate id.
// It reports whether an existing record was replaced.
func (c *Collection) add(r MarkerRecord) bool {
	if i, ok := c.index[r.ID]; ok {
		c.records[i] = r
		return true
	}
	c.index[r.ID] = len(c.records)
	c.records = append(c.records, r)
	return false
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}

// ByID returns the record for a marker id, if present.
func (c *Collection) ByID(id string) (MarkerRecord, bool) {
	i, ok := c.index[id]
	if !ok {
		return MarkerRecord{}, false
	}
	return c.records[i], true
}

// All returns an iterator over all records in file order. The sequence is
// restartable: ranging over it again replays from the start.
func (c *Collection) All() iter.Seq[MarkerRecord] {
	return func(yield func(MarkerRecord) bool) {
		for _, r := range c.records {
			if !yield(r) {
				return
			}
		}
	}
}

// ByChromosome returns an iterator over the records on one chromosome, in
// file order.
func (c *Collection) ByChromosome(chrom Chromosome) iter.Seq[MarkerRecord] {
	return func(yield func(MarkerRecord) bool) {
		for _, r := range c.records {
			if r.Chromosome != chrom {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Chromosomes returns the distinct chromosome labels present, sorted by
// chromosome rank (autosomes, X, Y, MT, then unrecognized labels lexically).
func (c *Collection) Chromosomes() []Chromosome {
	seen := make(map[Chromosome]bool)
	var chroms []Chromosome
	for _, r := range c.records {
		if !seen[r.Chromosome] {
			seen[r.Chromosome] = true
			chroms = append(chroms, r.Chromosome)
		}
	}
	sort.Slice(chroms, func(i, j int) bool {
		ri, rj := chroms[i].Rank(), chroms[j].Rank()
		if ri != rj {
			return ri < rj
		}
		return chroms[i] < chroms[j]
	})
	return chroms
}
