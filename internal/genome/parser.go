package genome

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// WarningKind classifies a non-fatal problem found while parsing.
type WarningKind int

const (
	// WarnFieldCount marks a data line without exactly 4 tab-separated fields.
	WarnFieldCount WarningKind = iota
	// WarnBadPosition marks a position field that is not a non-negative integer.
	WarnBadPosition
	// WarnBadGenotype marks a genotype field outside the allowed alphabet or length.
	WarnBadGenotype
	// WarnDuplicateID marks a marker id seen more than once; the later record wins.
	WarnDuplicateID
)

// Warning records one skipped or overwritten input line. Warnings are
// accumulated in input order and never abort the parse.
type Warning struct {
	Line    int
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// ReadError is a fatal failure of the underlying stream. Unlike per-line
// warnings it aborts the parse.
type ReadError struct {
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("stream read failed at line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a full parse pass.
type Result struct {
	Records  *Collection
	Warnings []Warning
	Header   []string // comment and column-header lines, verbatim
}

// Parser reads marker records from a raw genome export. It is a tolerant
// line parser: malformed data lines produce warnings and are skipped, and
// only a failure of the stream itself is fatal.
type Parser struct {
	reader        *bufio.Reader
	file          *os.File
	gzipReader    *gzip.Reader
	lineNumber    int
	header        []string
	warnings      []Warning
	mapNumericSex bool
	eof           bool
	logger        *zap.Logger
}

// NewParser creates a parser for the given file path. Gzip-compressed
// exports are detected by magic bytes and decompressed transparently.
// Use "-" to read from stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open genome file: %w", err)
	}

	p := &Parser{file: file, logger: zap.NewNop()}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read genome file: %w", err)
	}

	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek genome file: %w", err)
	}

	// Gzip magic number (0x1f, 0x8b)
	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g. stdin).
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{
		reader: bufio.NewReader(r),
		logger: zap.NewNop(),
	}
}

// SetNumericSexMapping configures whether the numeric sex-chromosome tokens
// "23", "24", "25" are mapped to X, Y, MT. Off by default: unrecognized
// labels pass through verbatim.
func (p *Parser) SetNumericSexMapping(enabled bool) {
	p.mapNumericSex = enabled
}

// SetLogger sets the logger for skipped-line messages.
func (p *Parser) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Next reads the next valid marker record. Comment, blank, and column-header
// lines are skipped; malformed data lines are skipped with a warning.
// Returns nil, nil at end of stream.
func (p *Parser) Next() (*MarkerRecord, error) {
	for {
		if p.eof {
			return nil, nil
		}

		line, err := p.reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return nil, &ReadError{Line: p.lineNumber + 1, Err: err}
			}
			// A final line without a trailing newline still counts.
			p.eof = true
			if line == "" {
				return nil, nil
			}
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		// Metadata: free-form comments and the "rsid chromosome position
		// genotype" column header some exports include.
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "rsid") {
			p.header = append(p.header, line)
			continue
		}

		rec, ok := p.parseLine(line)
		if !ok {
			continue
		}
		return rec, nil
	}
}

// parseLine validates one data line. On failure it records a warning and
// reports ok=false; the parse is never aborted by line content.
func (p *Parser) parseLine(line string) (*MarkerRecord, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != 4 {
		p.warn(WarnFieldCount, fmt.Sprintf("malformed line: expected 4 fields, found %d", len(fields)))
		return nil, false
	}

	// ParseUint rejects sign prefixes, so "+5" and "-5" both fail here;
	// bit size 63 keeps the value representable as int64.
	pos, err := strconv.ParseUint(fields[2], 10, 63)
	if err != nil {
		p.warn(WarnBadPosition, fmt.Sprintf("invalid position %q", fields[2]))
		return nil, false
	}

	genotype, err := ParseGenotype(fields[3])
	if err != nil {
		p.warn(WarnBadGenotype, err.Error())
		return nil, false
	}

	chrom := Chromosome(fields[1])
	if p.mapNumericSex {
		chrom = mapNumericSex(chrom)
	}

	return &MarkerRecord{
		ID:         fields[0],
		Chromosome: chrom,
		Position:   int64(pos),
		Genotype:   genotype,
	}, true
}

func (p *Parser) warn(kind WarningKind, msg string) {
	w := Warning{Line: p.lineNumber, Kind: kind, Message: msg}
	p.warnings = append(p.warnings, w)
	p.logger.Warn("skipped line", zap.Int("line", w.Line), zap.String("reason", msg))
}

// ParseAll consumes the remaining stream and builds the record collection.
// Duplicate marker ids overwrite the earlier record in place and emit a
// duplicate warning.
func (p *Parser) ParseAll() (*Result, error) {
	records := NewCollection()

	for {
		rec, err := p.Next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			break
		}
		if records.add(*rec) {
			p.warn(WarnDuplicateID, fmt.Sprintf("duplicate marker id %q: previous record overwritten", rec.ID))
		}
	}

	return &Result{
		Records:  records,
		Warnings: p.warnings,
		Header:   p.header,
	}, nil
}

// Parse reads a complete raw export from r. It is a convenience wrapper
// around NewParserFromReader followed by ParseAll.
func Parse(r io.Reader) (*Result, error) {
	return NewParserFromReader(r).ParseAll()
}

// Header returns the metadata lines seen so far, verbatim.
func (p *Parser) Header() []string {
	return p.header
}

// Warnings returns the warnings accumulated so far, in input order.
func (p *Parser) Warnings() []Warning {
	return p.warnings
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
