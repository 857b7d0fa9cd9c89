package genome

import "strconv"

// Chromosome is the chromosome label of a marker. Recognized labels are the
// autosomes "1".."22", "X", "Y", and "MT"; anything else is carried verbatim.
type Chromosome string

// Sex and mitochondrial chromosome labels.
const (
	ChromosomeX  Chromosome = "X"
	ChromosomeY  Chromosome = "Y"
	ChromosomeMT Chromosome = "MT"
)

// IsRecognized reports whether the label is one of the 22 autosomes, X, Y, or MT.
func (c Chromosome) IsRecognized() bool {
	switch c {
	case ChromosomeX, ChromosomeY, ChromosomeMT:
		return true
	}
	n, err := strconv.Atoi(string(c))
	return err == nil && n >= 1 && n <= 22
}

// Rank returns a deterministic sort key: autosomes in numeric order, then
// X, Y, MT, then unrecognized labels. Ties among unrecognized labels are
// broken lexically by the caller.
func (c Chromosome) Rank() int {
	switch c {
	case ChromosomeX:
		return 23
	case ChromosomeY:
		return 24
	case ChromosomeMT:
		return 25
	}
	if n, err := strconv.Atoi(string(c)); err == nil && n >= 1 && n <= 22 {
		return n
	}
	return 26
}

// mapNumericSex maps the numeric sex/mitochondrial tokens some exports use
// ("23", "24", "25") to X, Y, and MT. Other labels pass through unchanged.
func mapNumericSex(c Chromosome) Chromosome {
	switch c {
	case "23":
		return ChromosomeX
	case "24":
		return ChromosomeY
	case "25":
		return ChromosomeMT
	}
	return c
}
