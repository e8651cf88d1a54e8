package survey

import "github.com/hazyhaar/encuesta-wrangler/pkg/table"

// challengeOptions lists, per output column, the exact survey phrases that
// set the flag. Several columns blend a canonical option with a long
// free-text answer that was classified by hand; the phrases are verbatim,
// including truncation at the first comma of the original answer.
var challengeOptions = []struct {
	column  string
	phrases []string
}{
	{"desafio_estereotipos_genero", []string{"Estereotipos de género"}},
	{"desafio_falta_cobertura_mediatica", []string{"Falta de cobertura mediática"}},
	{"desafio_poca_independencia", []string{
		"Poca independencia de las liga/clubes masculinos",
		"En Argentina a nivel selección e interclubes se mueven e intercambian siempre las mismas jugadoras. Es decir",
	}},
	{"desafio_pocas_oportunidades_jovenes", []string{
		"Falta de talleres que impulsen a las niñas a entrenar desde chicas",
		"Pocas oportunidades para niñas y adolescentes",
	}},
	{"desafio_estigma_social", []string{"Estigma social"}},
	{"desafio_falta_espacios", []string{
		"Falta de espacios públicos para el deporte",
		"Experiencia del aficionado (Localidad de estadios y experiencia dentro)",
	}},
	{"desafio_promocion_debil", []string{"Promoción débil"}},
	{"desafio_baja_calidad_juego", []string{"Baja calidad de juego"}},
	{"desafio_poca_inversion", []string{"Poca inversión", "Poco interés de los directivos de fútbol"}},
	{"desafio_bajos_salarios", []string{
		"Bajos salarios de jugadoras",
		"Falta de reglas claras para mantener un balance competitivo en la cancha",
	}},
	{"desafio_aficion_no_crece", []string{"La afición no está creciendo"}},
}

// ChallengeColumns is the fixed output schema of ExtractChallenges.
var ChallengeColumns = func() []string {
	out := make([]string, len(challengeOptions))
	for i, o := range challengeOptions {
		out[i] = o.column
	}
	return out
}()

// ExtractChallenges derives the perceived-challenge flags from a
// comma-joined multi-select answer. Exact token matching, no normalization.
func ExtractChallenges(raw table.Cell) []table.Cell {
	flags := zeros(len(challengeOptions))
	s, ok := raw.AsString()
	if !ok {
		return flags
	}
	opts := SplitMulti(s)
	for i, o := range challengeOptions {
		if anyIn(opts, o.phrases) {
			flags[i] = table.Int(1)
		}
	}
	return flags
}
