package survey

import "github.com/hazyhaar/encuesta-wrangler/pkg/table"

// LeagueAwarenessColumns is the fixed output schema of ExtractLeagueAwareness.
var LeagueAwarenessColumns = []string{"conoce_ligas_ord"}

var leagueMap = map[string]int64{
	"No, ninguna": 0,
	"Me suenan, pero no conozco una en concreto": 1,
	"Sí, una o dos": 2,
	"Sí, varias":    3,
}

// ExtractLeagueAwareness maps league awareness to an ordinal. Exact labels.
func ExtractLeagueAwareness(raw table.Cell) []table.Cell {
	return mapExactInt(raw, leagueMap)
}

// ContentRecencyColumns is the fixed output schema of ExtractContentRecency.
var ContentRecencyColumns = []string{"vio_contenido_ultimo_anio_ord"}

// contentRecencyMap codes exposure to any content in the last year. The
// don't-remember answer sits at the neutral 0 between no (-1) and yes (1, 2).
var contentRecencyMap = map[string]int64{
	"No":                  -1,
	"Sí, alguna vez":      1,
	"Sí, muchas veces":    2,
	"No lo recuerdo bien": 0,
}

// ExtractContentRecency maps last-year content exposure to an ordinal.
func ExtractContentRecency(raw table.Cell) []table.Cell {
	return mapExactInt(raw, contentRecencyMap)
}

// GeneralPerceptionColumns is the fixed output schema of
// ExtractGeneralPerception.
var GeneralPerceptionColumns = []string{"percepcion_ff_ord", "percepcion_ff_sin_opinion"}

const noOpinionLabel = "No tengo una opinión formada"

var generalPerceptionMap = map[string]int64{
	"Amateur":                          -1,
	"Aún en crecimiento":               1,
	"Profesional, pero poco difundido": 2,
	"Igual de valioso que el masculino, pero subestimado": 3,
	noOpinionLabel: 0,
}

// ExtractGeneralPerception maps the general perception to a float ordinal
// plus a no-opinion flag. The flag is 0 for missing answers, matching the
// original comparison semantics.
func ExtractGeneralPerception(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Int(0)}
	}
	ord := table.Null()
	if v, hit := generalPerceptionMap[s]; hit {
		ord = table.Float(float64(v))
	}
	return []table.Cell{ord, table.Bool(s == noOpinionLabel)}
}

// ProLeagueColumns is the fixed output schema of ExtractProLeague.
var ProLeagueColumns = []string{"sabia_liga_cat", "conoce_liga_pais"}

// ExtractProLeague derives the national-pro-league awareness label and its
// -1/0/1 code. Exact labels; anything else is null in both outputs.
func ExtractProLeague(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Null()}
	}
	switch s {
	case "Sí":
		return []table.Cell{table.String(s), table.Float(1)}
	case "No":
		return []table.Cell{table.String(s), table.Float(-1)}
	case "Tal vez":
		return []table.Cell{table.String(s), table.Float(0)}
	}
	return []table.Cell{table.Null(), table.Null()}
}

func mapExactInt(raw table.Cell, m map[string]int64) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null()}
	}
	if v, hit := m[s]; hit {
		return []table.Cell{table.Int(v)}
	}
	return []table.Cell{table.Null()}
}
