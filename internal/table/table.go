// Package table holds the in-memory CSV table that flows through the
// enrichment pipeline. Rows keep their input order; generated columns are
// merged all-or-nothing before writing.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Table is an ordered CSV table: one header row plus data rows.
type Table struct {
	header []string
	rows   [][]string
}

// Load reads a CSV file into a Table. The file must have a header row and
// rectangular records (encoding/csv enforces the field count).
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty: no header row", path)
	}

	return &Table{
		header: records[0],
		rows:   records[1:],
	}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Header returns the column names in order.
func (t *Table) Header() []string {
	return t.header
}

// ColumnIndex returns the position of a named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.header {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// Column returns all values of a named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found (have: %s)", name, strings.Join(t.header, ", "))
	}
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[idx]
	}
	return values, nil
}

// AppendColumns merges generated columns into the table. Every column must
// have exactly one value per row; on any length mismatch nothing is merged
// and the table is left unmodified.
func (t *Table) AppendColumns(names []string, columns [][]string) error {
	if len(names) != len(columns) {
		return fmt.Errorf("got %d names for %d columns", len(names), len(columns))
	}
	for i, col := range columns {
		if len(col) != len(t.rows) {
			return fmt.Errorf("column %q has %d values for %d rows", names[i], len(col), len(t.rows))
		}
	}

	t.header = append(t.header, names...)
	for i := range t.rows {
		for _, col := range columns {
			t.rows[i] = append(t.rows[i], col[i])
		}
	}
	return nil
}

// Write serializes the table to a CSV file. Output is plain UTF-8 with the
// header row first and no index column.
func (t *Table) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(t.rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// Preview renders the header and the first n rows for console output,
// one pipe-separated line per row.
func (t *Table) Preview(n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	var b strings.Builder
	b.WriteString(strings.Join(t.header, " | "))
	for _, row := range t.rows[:n] {
		b.WriteString("\n")
		b.WriteString(strings.Join(row, " | "))
	}
	return b.String()
}
