// Package store persists parsed markers to a DuckDB database for ad-hoc
// SQL querying.
package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/genomelens/genomelens/internal/genome"
)

// Store manages a DuckDB connection holding marker records.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates the markers table if it doesn't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS markers (
		rsid VARCHAR,
		chromosome VARCHAR,
		position BIGINT,
		genotype VARCHAR,
		no_call BOOLEAN,
		PRIMARY KEY (rsid)
	)`)
	return err
}

// WriteMarkers batch-inserts all records of a collection using the Appender
// API. The collection's duplicate policy guarantees unique rsids.
func (s *Store) WriteMarkers(c *genome.Collection) error {
	if c.Len() == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "markers")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for r := range c.All() {
		if err := appender.AppendRow(
			r.ID, string(r.Chromosome), r.Position,
			r.Genotype.String(), r.Genotype.IsNoCall(),
		); err != nil {
			return fmt.Errorf("append marker %s: %w", r.ID, err)
		}
	}

	return appender.Flush()
}

// LookupMarker queries the database for one marker by rsid.
func (s *Store) LookupMarker(rsid string) (*genome.MarkerRecord, error) {
	row := s.db.QueryRow(
		`SELECT rsid, chromosome, position, genotype FROM markers WHERE rsid = ?`, rsid)

	var id, chrom, genoStr string
	var pos int64
	if err := row.Scan(&id, &chrom, &pos, &genoStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query marker: %w", err)
	}

	geno, err := genome.ParseGenotype(genoStr)
	if err != nil {
		return nil, fmt.Errorf("stored genotype for %s: %w", rsid, err)
	}

	return &genome.MarkerRecord{
		ID:         id,
		Chromosome: genome.Chromosome(chrom),
		Position:   pos,
		Genotype:   geno,
	}, nil
}

// MarkerCount returns the number of stored markers.
func (s *Store) MarkerCount() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM markers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count markers: %w", err)
	}
	return n, nil
}

// Clear removes all stored markers.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM markers`)
	return err
}
