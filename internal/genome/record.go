package genome

import "fmt"

// MarkerRecord is one observed genetic marker from a raw export.
type MarkerRecord struct {
	ID         string     // marker identifier (e.g. "rs4680"); unique within a file
	Chromosome Chromosome // chromosome label, verbatim unless numeric-sex mapping is on
	Position   int64      // 1-based position on the chromosome
	Genotype   Genotype   // observed call, possibly a no-call
}

// TabLine serializes the record back to its raw-export line form. Parsing
// the returned line yields an identical record.
func (r MarkerRecord) TabLine() string {
	return fmt.Sprintf("%s\t%s\t%d\t%s", r.ID, r.Chromosome, r.Position, r.Genotype)
}
