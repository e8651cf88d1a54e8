package export

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/encuesta-wrangler/pkg/survey"
	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// WriteSQLite writes the table into a fresh `respuestas` table at path, one
// row per respondent. Column names are slugged for SQL ergonomics (question
// headers are full sentences); collisions get a numeric suffix. Values are
// stored as TEXT, nulls as SQL NULL.
func WriteSQLite(t *table.Table, path string) error {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	names := t.Names()
	sqlNames := slugColumns(names)

	quoted := make([]string, len(sqlNames))
	for i, n := range sqlNames {
		quoted[i] = `"` + n + `" TEXT`
	}
	if _, err := db.Exec(`DROP TABLE IF EXISTS respuestas`); err != nil {
		return fmt.Errorf("drop respuestas: %w", err)
	}
	ddl := `CREATE TABLE respuestas (` + strings.Join(quoted, ", ") + `)`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create respuestas: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(sqlNames)), ", ")
	insert := `INSERT INTO respuestas VALUES (` + placeholders + `)`

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	cols := make([][]table.Cell, len(names))
	for i, name := range names {
		cols[i], _ = t.Column(name)
	}
	args := make([]any, len(names))
	for row := 0; row < t.Rows(); row++ {
		for i := range names {
			c := cols[i][row]
			if c.IsNull() {
				args[i] = nil
			} else {
				args[i] = c.Format()
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert row %d: %w", row, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// slugColumns slugs every header and disambiguates duplicates with _2, _3...
func slugColumns(names []string) []string {
	out := make([]string, len(names))
	seen := make(map[string]int)
	for i, name := range names {
		s := survey.Slug(name)
		if s == "" {
			s = fmt.Sprintf("col_%d", i+1)
		}
		seen[s]++
		if n := seen[s]; n > 1 {
			s = fmt.Sprintf("%s_%d", s, n)
		}
		out[i] = s
	}
	return out
}
