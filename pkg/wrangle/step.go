// Package wrangle runs the feature-extraction pipeline: a single forward
// pass that copies the raw response table and appends every extractor's
// derived columns. Steps are independent; a missing source column skips the
// step, never the run.
package wrangle

import "github.com/hazyhaar/encuesta-wrangler/pkg/table"

// Step derives one or more feature columns from a single source column.
// Exactly one of Cell or Expand is set: Cell steps declare a fixed output
// schema and map row by row; Expand steps see the whole column and may
// derive their schema from the observed values (gender dummies only).
type Step struct {
	Name    string
	Source  string   // verbatim question header in the raw table
	Columns []string // declared output schema for Cell steps
	Cell    func(table.Cell) []table.Cell
	Expand  func([]table.Cell) (names []string, cols [][]table.Cell)
}

// apply computes the step's output columns from the source column.
func (s Step) apply(src []table.Cell) (names []string, cols [][]table.Cell) {
	if s.Expand != nil {
		return s.Expand(src)
	}
	cols = make([][]table.Cell, len(s.Columns))
	for i := range cols {
		cols[i] = make([]table.Cell, len(src))
	}
	for row, raw := range src {
		out := s.Cell(raw)
		for i := range s.Columns {
			cols[i][row] = out[i]
		}
	}
	return s.Columns, cols
}
