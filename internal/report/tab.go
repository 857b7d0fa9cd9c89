package report

import (
	"bufio"
	"io"

	"github.com/genomelens/genomelens/internal/genome"
)

// DumpWriter writes marker records back out in the raw-export tab-delimited
// form, so a dump can be re-parsed losslessly.
type DumpWriter struct {
	w *bufio.Writer
}

// NewDumpWriter creates a tab-delimited dump writer.
func NewDumpWriter(w io.Writer) *DumpWriter {
	return &DumpWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the column-header comment line.
func (dw *DumpWriter) WriteHeader() error {
	_, err := dw.w.WriteString("# rsid\tchromosome\tposition\tgenotype\n")
	return err
}

// Write writes a single record.
func (dw *DumpWriter) Write(r genome.MarkerRecord) error {
	_, err := dw.w.WriteString(r.TabLine() + "\n")
	return err
}

// WriteAll writes every record of a collection in file order.
func (dw *DumpWriter) WriteAll(c *genome.Collection) error {
	for r := range c.All() {
		if err := dw.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteChromosome writes the records on one chromosome in file order.
func (dw *DumpWriter) WriteChromosome(c *genome.Collection, chrom genome.Chromosome) error {
	for r := range c.ByChromosome(chrom) {
		if err := dw.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (dw *DumpWriter) Flush() error {
	return dw.w.Flush()
}
