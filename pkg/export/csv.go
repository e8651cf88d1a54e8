// Package export writes the wrangled table to its sinks: a CSV file for
// spreadsheet and statistics tooling and, optionally, a SQLite database for SQL-based
// analysis. The table itself stays the in-memory contract; sinks are the CLI
// surface around it.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// WriteCSV writes the table to path with a header row. Nulls render as
// empty fields.
func WriteCSV(t *table.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	names := t.Names()
	if err := w.Write(names); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	cols := make([][]table.Cell, len(names))
	for i, name := range names {
		cols[i], _ = t.Column(name)
	}
	record := make([]string, len(names))
	for row := 0; row < t.Rows(); row++ {
		for i := range names {
			record[i] = cols[i][row].Format()
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
