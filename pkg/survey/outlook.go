package survey

import (
	"strings"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// GrowthColumns is the fixed output schema of ExtractGrowth.
var GrowthColumns = []string{"crecimiento_5y_ord", "crecimiento_5y_no_seguro"}

// ExtractGrowth classifies the 5-year growth outlook. The unsure answer is
// a dedicated flag, not an ordinal; unrecognized answers leave the flag at 0.
func ExtractGrowth(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Int(0)}
	}
	t := NormalizeSoft(s)
	switch {
	case strings.Contains(t, "se mantendra igual"):
		return []table.Cell{table.Int(0), table.Int(0)}
	case strings.Contains(t, "crecera lentamente"):
		return []table.Cell{table.Int(1), table.Int(0)}
	case strings.Contains(t, "crecera significativamente"):
		return []table.Cell{table.Int(2), table.Int(0)}
	case strings.Contains(t, "no estoy seguro"):
		return []table.Cell{table.Null(), table.Int(1)}
	}
	return []table.Cell{table.Null(), table.Int(0)}
}

// MotivationColumns is the fixed output schema of ExtractMotivation.
var MotivationColumns = []string{"motiv_apoyar_score", "motiv_apoyar_cat"}

var motivationScore = map[string]float64{"Sí": 1.0, "Tal vez": 0.5, "No": 0.0}

// ExtractMotivation scores whether a women's section would raise support for
// a club. Exact label matching.
func ExtractMotivation(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Null()}
	}
	score, hit := motivationScore[s]
	if !hit {
		return []table.Cell{table.Null(), table.Null()}
	}
	return []table.Cell{table.Float(score), table.String(s)}
}

// BettingColumns is the fixed output schema of ExtractBetting.
var BettingColumns = []string{"apuestas_ord", "apuesta"}

// bettingMap weights betting frequency; the jumps are intentional so heavy
// bettors separate in downstream clustering.
var bettingMap = map[string]int64{
	"Nunca":                       0,
	"Al menos una vez por mes":    1,
	"Al menos una vez por semana": 5,
	"Al menos una vez al día":     10,
}

// ExtractBetting maps betting frequency to its weight and a bets-at-all flag.
func ExtractBetting(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Null()}
	}
	w, hit := bettingMap[s]
	if !hit {
		return []table.Cell{table.Null(), table.Null()}
	}
	return []table.Cell{table.Int(w), table.Bool(w > 0)}
}
