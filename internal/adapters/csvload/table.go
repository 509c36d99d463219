package csvload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// An in-memory CSV table with standardized column names.
// Column names are trimmed, lower-cased, and space-separated words are
// joined with underscores, so lookups never depend on the formatting
// of the source file header.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// Standardize a single column name. Idempotent on already-clean names.
func CleanColumnName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "_")
}

// ReadTable parses CSV data into a Table, cleaning the header row.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table: parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read table: missing header row")
	}

	cols := make([]string, len(records[0]))
	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		clean := CleanColumnName(name)
		cols[i] = clean
		index[clean] = i
	}

	return &Table{
		Columns: cols,
		Rows:    records[1:],
		index:   index,
	}, nil
}

// ReadTableFile parses the CSV file at path into a Table.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read table: open %q: %w", path, err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("read table: file %q: %w", path, err)
	}
	return t, nil
}

// Index returns the position of a cleaned column name, or -1.
func (t *Table) Index(col string) int {
	i, ok := t.index[col]
	if !ok {
		return -1
	}
	return i
}

// Field returns the trimmed cell at (row, col), or "" when the column
// does not exist or the row is short.
func (t *Table) Field(row []string, col string) string {
	i := t.Index(col)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Require reports an error naming the first missing column, if any.
func (t *Table) Require(cols ...string) error {
	for _, c := range cols {
		if t.Index(c) < 0 {
			return fmt.Errorf("require columns: missing column %q", c)
		}
	}
	return nil
}
