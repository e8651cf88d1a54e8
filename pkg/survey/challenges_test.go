package survey

import (
	"testing"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

func TestExtractChallenges(t *testing.T) {
	got := flagsByName(t, ChallengeColumns,
		ExtractChallenges(table.String("Estereotipos de género, Bajos salarios de jugadoras")))
	assertOnlySet(t, got, "desafio_estereotipos_genero", "desafio_bajos_salarios")
}

func TestExtractChallengesBlendedFreeText(t *testing.T) {
	// Hand-classified free-text answers count toward their assigned column.
	got := flagsByName(t, ChallengeColumns,
		ExtractChallenges(table.String("Poco interés de los directivos de fútbol")))
	assertOnlySet(t, got, "desafio_poca_inversion")

	got = flagsByName(t, ChallengeColumns,
		ExtractChallenges(table.String("Pocas oportunidades para niñas y adolescentes, Estigma social")))
	assertOnlySet(t, got, "desafio_pocas_oportunidades_jovenes", "desafio_estigma_social")
}

func TestExtractChallengesExactMatchOnly(t *testing.T) {
	// Tokens are matched exactly, not by substring: a paraphrase sets nothing.
	got := flagsByName(t, ChallengeColumns,
		ExtractChallenges(table.String("estereotipos de genero")))
	assertOnlySet(t, got)
}

func TestExtractChallengesNull(t *testing.T) {
	got := flagsByName(t, ChallengeColumns, ExtractChallenges(table.Null()))
	assertOnlySet(t, got)
}
