package survey

import (
	"strconv"
	"strings"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// PerceptionColumns is the fixed output schema of ExtractPerception.
var PerceptionColumns = []string{"percep_patrocinio_ord"}

// perceptionMap scores the sponsorship perception shift on a -2..+2 scale.
// Exact label matching against the survey options.
var perceptionMap = map[string]int64{
	"Mucho menos favorable": -2,
	"Algo menos favorable":  -1,
	"Sin cambio":            0,
	"Algo más favorable":    1,
	"Mucho más favorable":   2,
}

// ExtractPerception maps the sponsorship-perception answer to its ordinal.
func ExtractPerception(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null()}
	}
	if v, hit := perceptionMap[s]; hit {
		return []table.Cell{table.Int(v)}
	}
	return []table.Cell{table.Null()}
}

// PurchaseColumns is the fixed output schema of ExtractPurchase.
var PurchaseColumns = []string{"compra_patrocinio_cat", "compra_influenciada"}

// purchaseMap codes the sponsorship-influenced purchase answer. "Not sure"
// and "not applicable" intentionally share the neutral code.
var purchaseMap = map[string]int64{
	"Sí":                 1,
	"No":                 -1,
	"No estoy seguro/a":  0,
	"No aplica":          0,
}

// ExtractPurchase derives the purchase code and the binary influence flag.
// The flag is 1 only for a plain yes and 0 only for a plain no; the neutral
// answers deliberately drop to null.
func ExtractPurchase(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Null()}
	}
	code, hit := purchaseMap[s]
	if !hit {
		return []table.Cell{table.Null(), table.Null()}
	}
	influenced := table.Null()
	switch s {
	case "Sí":
		influenced = table.Int(1)
	case "No":
		influenced = table.Int(0)
	}
	return []table.Cell{table.Int(code), influenced}
}

// ImportanceColumns is the fixed output schema of ExtractImportance.
var ImportanceColumns = []string{"importancia_marcas", "importancia_marcas_cat"}

// ExtractImportance parses the Likert 1-5 brand-support importance answer.
// Any numeric answer is kept in the raw column; the categorical copy is null
// outside the 1..5 scale.
func ExtractImportance(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		// Numeric cells can arrive as such from the spreadsheet loader.
		if f, isNum := raw.AsFloat(); isNum {
			return importanceFromFloat(f)
		}
		return []table.Cell{table.Null(), table.Null()}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return []table.Cell{table.Null(), table.Null()}
	}
	return importanceFromFloat(f)
}

func importanceFromFloat(f float64) []table.Cell {
	n := int64(f)
	if float64(n) != f {
		return []table.Cell{table.Null(), table.Null()}
	}
	cat := table.Null()
	if n >= 1 && n <= 5 {
		cat = table.Int(n)
	}
	return []table.Cell{table.Int(n), cat}
}
