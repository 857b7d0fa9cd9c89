// Package genome provides parsing and the record model for raw
// consumer-genomics exports (23andMe-style tab-delimited files).
package genome

import (
	"fmt"
	"strings"
)

// Allele is a single observed allele symbol.
type Allele byte

// Allele symbols observed in raw exports. D and I mark deletion and
// insertion calls at indel markers.
const (
	AlleleA Allele = 'A'
	AlleleC Allele = 'C'
	AlleleG Allele = 'G'
	AlleleT Allele = 'T'
	AlleleD Allele = 'D'
	AlleleI Allele = 'I'
)

// NoCallString is how raw exports render a marker with no determined genotype.
const NoCallString = "--"

// Genotype is the observed call at a marker: zero, one, or two allele
// symbols, or an explicit no-call. The zero value is an empty (but called)
// genotype; use NoCall() for the no-call state.
type Genotype struct {
	alleles [2]Allele
	n       uint8
	noCall  bool
}

// NoCall returns the distinct no-call genotype.
func NoCall() Genotype {
	return Genotype{noCall: true}
}

// ParseGenotype parses a genotype field from a raw export. The field is
// uppercased before validation but otherwise taken as-is: the format never
// pads fields, so surrounding whitespace is invalid. Valid forms are the
// no-call sentinel "--" and 0-2 symbols over the alphabet ACGTDI.
func ParseGenotype(s string) (Genotype, error) {
	s = strings.ToUpper(s)

	if s == NoCallString {
		return NoCall(), nil
	}

	if len(s) > 2 {
		return Genotype{}, fmt.Errorf("genotype %q longer than 2 alleles", s)
	}

	var g Genotype
	for i := 0; i < len(s); i++ {
		a := Allele(s[i])
		switch a {
		case AlleleA, AlleleC, AlleleG, AlleleT, AlleleD, AlleleI:
			g.alleles[i] = a
		default:
			return Genotype{}, fmt.Errorf("genotype %q contains invalid allele %q", s, string(a))
		}
	}
	g.n = uint8(len(s))
	return g, nil
}

// IsNoCall reports whether no genotype was determined at the marker.
func (g Genotype) IsNoCall() bool {
	return g.noCall
}

// Len returns the number of allele symbols (0 for a no-call).
func (g Genotype) Len() int {
	if g.noCall {
		return 0
	}
	return int(g.n)
}

// Alleles returns the allele symbols in observed order.
func (g Genotype) Alleles() []Allele {
	if g.noCall || g.n == 0 {
		return nil
	}
	return g.alleles[:g.n]
}

// IsHomozygous reports whether both alleles of a diploid call are identical.
// Haploid and no-call genotypes are neither homozygous nor heterozygous.
func (g Genotype) IsHomozygous() bool {
	return !g.noCall && g.n == 2 && g.alleles[0] == g.alleles[1]
}

// IsHeterozygous reports whether the two alleles of a diploid call differ.
func (g Genotype) IsHeterozygous() bool {
	return !g.noCall && g.n == 2 && g.alleles[0] != g.alleles[1]
}

// String renders the genotype in its raw-export form ("--" for a no-call).
func (g Genotype) String() string {
	if g.noCall {
		return NoCallString
	}
	b := make([]byte, g.n)
	for i := range b {
		b[i] = byte(g.alleles[i])
	}
	return string(b)
}
