package survey

import (
	"strings"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// ChannelCatalog maps live-viewing channel phrase variants to canonical
// channel tags. Substring matching over the soft-normalized answer.
var ChannelCatalog = NewCatalog("canales", "canal__",
	[]string{
		"tv_abierta",
		"tv_cable",
		"streaming",
		"redes_sociales",
		"radio",
		"estadio",
		"app_deportiva",
		"youtube",
	},
	[]Alias{
		{"tv abierta", "tv_abierta"},
		{"tv por cable", "tv_cable"},
		{"sky soccer", "tv_cable"},
		{"sky", "tv_cable"},
		{"servicio de streaming", "streaming"},
		{"streaming", "streaming"},
		{"youtube", "youtube"},
		{"dazn", "streaming"},
		{"danz", "streaming"},
		{"redes sociales", "redes_sociales"},
		{"radio", "radio"},
		{"asistencia al estadio", "estadio"},
		{"aplicacion deportiva", "app_deportiva"},
		{"iptv", "tv_cable"},
		{"samsung tv", "tv_cable"},
	})

var (
	channelNegations    = []string{"no sigo los juegos en vivo", "no aplica"}
	channelUndetermined = []string{"donde lo pasen"}
)

// ChannelColumns is the fixed output schema of ExtractChannels: one flag per
// channel plus the two special-case flags.
var ChannelColumns = append(ChannelCatalog.Columns(), "canal__no_en_vivo", "canal__indiferente")

// ExtractChannels derives live-viewing channel flags. A negation phrase sets
// canal__no_en_vivo and suppresses every ordinary flag. The "wherever it
// airs" answer sets canal__indiferente but still allows ordinary flags.
func ExtractChannels(raw table.Cell) []table.Cell {
	n := len(ChannelColumns)
	flags := zeros(n)
	s, ok := raw.AsString()
	if !ok {
		return flags
	}
	t := NormalizeSoft(s)
	for _, neg := range channelNegations {
		if strings.Contains(t, neg) {
			flags[n-2] = table.Int(1)
			return flags
		}
	}
	for _, und := range channelUndetermined {
		if strings.Contains(t, und) {
			flags[n-1] = table.Int(1)
		}
	}
	hits := ChannelCatalog.Match(t)
	for i, tag := range ChannelCatalog.tags {
		if hits[tag] {
			flags[i] = table.Int(1)
		}
	}
	return flags
}

func zeros(n int) []table.Cell {
	out := make([]table.Cell, n)
	for i := range out {
		out[i] = table.Int(0)
	}
	return out
}
