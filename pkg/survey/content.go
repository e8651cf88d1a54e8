package survey

import (
	"strings"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// ContentCatalog maps content-type phrase variants to canonical tags.
// Substring matching over the soft-normalized answer. Note that
// "contenido_fans" is declared but no alias produces it, so that column is
// always zero; see Findings.
var ContentCatalog = NewCatalog("contenido", "cont__",
	[]string{
		"resumenes_highlights",
		"entrevistas",
		"estadisticas_analisis",
		"detras_camaras",
		"contenido_fans",
		"contenido_marca_patrocinado",
		"noticieros_profesionales",
		"noticieros_independientes",
		"contenido_club",
		"contenido_creado_por_usuarios",
	},
	[]Alias{
		{"resumenes", "resumenes_highlights"},
		{"highlights", "resumenes_highlights"},
		{"entrevistas a jugadoras", "entrevistas"},
		{"entrevistas a entrenadores", "entrevistas"},
		{"entrevistas", "entrevistas"},
		{"estadisticas del juego", "estadisticas_analisis"},
		{"analisis tactico", "estadisticas_analisis"},
		{"analisis", "estadisticas_analisis"},
		{"detras de camaras", "detras_camaras"},
		{"vida de equipo", "detras_camaras"},
		{"contenido generado por fans", "contenido_creado_por_usuarios"},
		{"creadoras de contenido", "contenido_creado_por_usuarios"},
		{"contenido de marca", "contenido_marca_patrocinado"},
		{"patrocinado", "contenido_marca_patrocinado"},
		{"noticieros profesionales", "noticieros_profesionales"},
		{"noticieros independientes", "noticieros_independientes"},
		{"contenido del club", "contenido_club"},
	})

// ContentColumns is the fixed output schema of ExtractContent.
var ContentColumns = append(ContentCatalog.Columns(), "cont__no_aplica")

// ExtractContent derives consumed content-type flags. "no aplica"
// short-circuits and suppresses the ordinary flags.
func ExtractContent(raw table.Cell) []table.Cell {
	n := len(ContentColumns)
	flags := zeros(n)
	s, ok := raw.AsString()
	if !ok {
		return flags
	}
	t := NormalizeSoft(s)
	if strings.Contains(t, "no aplica") {
		flags[n-1] = table.Int(1)
		return flags
	}
	hits := ContentCatalog.Match(t)
	for i, tag := range ContentCatalog.tags {
		if hits[tag] {
			flags[i] = table.Int(1)
		}
	}
	return flags
}
