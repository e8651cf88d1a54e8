package survey

import (
	"strings"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// InvestmentColumns is the fixed output schema of ExtractInvestment: the
// ordinal, the label, and one dummy per label (alphabetical order). Dummies
// sum to 1 for classified rows and 0 otherwise.
var InvestmentColumns = []string{
	"inversion_igual_ord",
	"inversion_igual_cat",
	"inversion_igual_no",
	"inversion_igual_no_seguro",
	"inversion_igual_si",
}

// ExtractInvestment classifies the equal-investment opinion. Soft
// normalization; the yes rule is a prefix test so elaborated yes answers
// still count. The -11 code for the unsure label is preserved literally.
func ExtractInvestment(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Null(), table.Int(0), table.Int(0), table.Int(0)}
	}
	t := NormalizeSoft(s)
	switch {
	case strings.HasPrefix(t, "si"):
		return []table.Cell{table.Int(1), table.String("si"), table.Int(0), table.Int(0), table.Int(1)}
	case t == "no":
		return []table.Cell{table.Int(0), table.String("no"), table.Int(1), table.Int(0), table.Int(0)}
	case strings.Contains(t, "no estoy seguro"):
		return []table.Cell{table.Int(-11), table.String("no_seguro"), table.Int(0), table.Int(1), table.Int(0)}
	}
	return []table.Cell{table.Null(), table.Null(), table.Int(0), table.Int(0), table.Int(0)}
}

// AttitudeColumns is the fixed output schema of ExtractAttitude, laid out
// like InvestmentColumns.
var AttitudeColumns = []string{
	"actitud_marca_ff_ord",
	"actitud_marca_ff_cat",
	"actitud_marca_ff_apoyo",
	"actitud_marca_ff_boicot",
	"actitud_marca_ff_no_cambia",
}

// ExtractAttitude classifies the support-or-boycott attitude toward brands.
// Soft normalization, first matching rule wins.
func ExtractAttitude(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Null(), table.Int(0), table.Int(0), table.Int(0)}
	}
	t := NormalizeSoft(s)
	switch {
	case strings.Contains(t, "boicot"):
		return []table.Cell{table.Int(-1), table.String("boicot"), table.Int(0), table.Int(1), table.Int(0)}
	case strings.Contains(t, "no cambiaria") || strings.Contains(t, "no cambia"):
		return []table.Cell{table.Int(0), table.String("no_cambia"), table.Int(0), table.Int(0), table.Int(1)}
	case strings.Contains(t, "apoyar") || strings.Contains(t, "apoyaria"):
		return []table.Cell{table.Int(1), table.String("apoyo"), table.Int(1), table.Int(0), table.Int(0)}
	}
	return []table.Cell{table.Null(), table.Null(), table.Int(0), table.Int(0), table.Int(0)}
}

// SentimentColumns is the fixed output schema of ExtractSentiment.
var SentimentColumns = []string{"campanas_deportistas_ord"}

// ExtractSentiment scores the reaction to athlete-centered brand campaigns.
// The negative rules are tested first; order is deliberate, not
// most-specific-match.
func ExtractSentiment(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null()}
	}
	t := NormalizeSoft(s)
	switch {
	case strings.Contains(t, "forzado") || strings.Contains(t, "superficial"):
		return []table.Cell{table.Int(-1)}
	case strings.Contains(t, "no lo noto"):
		return []table.Cell{table.Int(0)}
	case strings.Contains(t, "inspira"):
		return []table.Cell{table.Int(2)}
	case strings.Contains(t, "me gusta") || strings.Contains(t, "confianza"):
		return []table.Cell{table.Int(1)}
	}
	return []table.Cell{table.Null()}
}
