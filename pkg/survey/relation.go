package survey

import (
	"regexp"
	"strings"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// RelationColumns is the fixed output schema of ExtractRelation.
var RelationColumns = []string{
	"rel_fanatico",
	"rel_atleta_amateur",
	"rel_atleta_profesional",
	"rel_trabajo_industria",
	"rel_no_activo",
}

var reNoSigo = regexp.MustCompile(`\bno sigo\b`)

// ExtractRelation derives the relationship-to-the-sport indicator flags from
// a multi-select answer. Strict normalization; several flags may be set at
// once. A missing answer yields all-zero flags, not nulls.
func ExtractRelation(raw table.Cell) []table.Cell {
	flags := make([]table.Cell, len(RelationColumns))
	for i := range flags {
		flags[i] = table.Int(0)
	}
	s, ok := raw.AsString()
	if !ok {
		return flags
	}
	t := NormalizeStrict(s)
	if strings.Contains(t, "fanatic") {
		flags[0] = table.Int(1)
	}
	if strings.Contains(t, "amateur") {
		flags[1] = table.Int(1)
	}
	if strings.Contains(t, "profesional") {
		flags[2] = table.Int(1)
	}
	if strings.Contains(t, "industria") || strings.Contains(t, "trabajo en la industria") {
		flags[3] = table.Int(1)
	}
	if strings.Contains(t, "no sigo ni trabajo activamente") || reNoSigo.MatchString(t) {
		flags[4] = table.Int(1)
	}
	return flags
}
