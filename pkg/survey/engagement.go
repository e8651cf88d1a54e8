package survey

import (
	"strings"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// FollowColumns is the fixed output schema of ExtractFollow.
var FollowColumns = []string{"sigue_equipos", "sigue_jugadoras"}

// ExtractFollow derives whether the respondent follows specific teams and/or
// players. Soft normalization, first matching rule wins.
func ExtractFollow(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Null()}
	}
	t := NormalizeSoft(s)
	switch {
	case strings.Contains(t, "ambos"):
		return []table.Cell{table.Int(1), table.Int(1)}
	case strings.Contains(t, "equipos"):
		return []table.Cell{table.Int(1), table.Int(0)}
	case strings.Contains(t, "jugadoras"):
		return []table.Cell{table.Int(0), table.Int(1)}
	case strings.Contains(t, "no aplica") || t == "no":
		return []table.Cell{table.Int(0), table.Int(0)}
	}
	return []table.Cell{table.Null(), table.Null()}
}

// AttendanceColumns is the fixed output schema of ExtractAttendance.
var AttendanceColumns = []string{"asist_ord", "ha_asistido"}

// ExtractAttendance derives the match-attendance ordinal and the has-attended
// flag. "no aplica" is tested before the bare "no" containment rule; the
// rule order is load-bearing and preserved literally.
func ExtractAttendance(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Null()}
	}
	t := NormalizeSoft(s)
	var k int64
	switch {
	case strings.Contains(t, "con frecuencia"):
		k = 2
	case strings.Contains(t, "una o dos"):
		k = 1
	case strings.Contains(t, "no aplica"):
		return []table.Cell{table.Null(), table.Int(0)}
	case strings.Contains(t, "no"):
		k = 0
	default:
		return []table.Cell{table.Null(), table.Null()}
	}
	return []table.Cell{table.Int(k), table.Bool(k == 1 || k == 2)}
}
