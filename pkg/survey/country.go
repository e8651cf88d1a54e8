package survey

import (
	"strings"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// countryMap keys are strict-normalized variants and misspellings seen in
// the responses; values are the canonical display names.
var countryMap = map[string]string{
	"mexico":           "México",
	"mexco":            "México",
	"mexuco":           "México",
	"cdmx":             "México",
	"ciudad de mexico": "México",
	"estados unidos":   "Estados Unidos",
	"usa":              "Estados Unidos",
	"colombia":         "Colombia",
	"ecuador":          "Ecuador",
	"peru":             "Perú",
	"brasil":           "Brasil",
	"argentina":        "Argentina",
	"costa rica":       "Costa Rica",
	"alemania":         "Alemania",
	"dinamarca":        "Dinamarca",
	"espana":           "España",
	"canada":           "Canadá",
	"paises bajos":     "Países Bajos",
	"puerto rico":      "Puerto Rico",
	"el salvador":      "El Salvador",
	"guatemala":        "Guatemala",
}

// HomogenizeCountry maps a free-text country answer to its canonical name.
// Unknown values pass through trimmed.
func HomogenizeCountry(s string) string {
	if canon, ok := countryMap[NormalizeStrict(s)]; ok {
		return canon
	}
	return strings.TrimSpace(s)
}

// CountryColumns is the fixed output schema of ExtractCountry.
var CountryColumns = []string{"pais_homogeneizado"}

// ExtractCountry is the cell form of HomogenizeCountry for pipeline use.
func ExtractCountry(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null()}
	}
	return []table.Cell{table.String(HomogenizeCountry(s))}
}
