package survey

import (
	"sort"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// AgeColumns is the fixed output schema of ExtractAge.
var AgeColumns = []string{"edad_ordinal", "edad_midpoint"}

// ageBrackets is the ordered bracket scale with representative midpoints for
// descriptive statistics.
var ageBrackets = []struct {
	label    string
	midpoint float64
}{
	{"Menor de 18", 16.5},
	{"18-24", 21.0},
	{"25-34", 30.0},
	{"35-44", 40.0},
	{"45-54", 50.0},
	{"55+", 60.0},
}

// ExtractAge maps an age-bracket label to its ordinal rank and numeric
// midpoint. Unknown labels are null in both outputs.
func ExtractAge(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Null()}
	}
	for i, b := range ageBrackets {
		if s == b.label {
			return []table.Cell{table.Int(int64(i)), table.Float(b.midpoint)}
		}
	}
	return []table.Cell{table.Null(), table.Null()}
}

// GenderExpand expands a gender column into the categorical copy plus one
// dummy per observed value, sorted. This is the one extractor without a
// fixed output schema: the dummy columns depend on the dataset.
func GenderExpand(cells []table.Cell) (names []string, cols [][]table.Cell) {
	seen := make(map[string]bool)
	for _, c := range cells {
		if s, ok := c.AsString(); ok {
			seen[s] = true
		}
	}
	labels := make([]string, 0, len(seen))
	for s := range seen {
		labels = append(labels, s)
	}
	sort.Strings(labels)

	names = append(names, "genero_categoria")
	cat := make([]table.Cell, len(cells))
	copy(cat, cells)
	cols = append(cols, cat)

	for _, label := range labels {
		names = append(names, "genero_"+label)
		dummy := make([]table.Cell, len(cells))
		for i, c := range cells {
			s, ok := c.AsString()
			dummy[i] = table.Bool(ok && s == label)
		}
		cols = append(cols, dummy)
	}
	return names, cols
}
