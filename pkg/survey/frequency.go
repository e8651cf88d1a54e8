package survey

import "github.com/hazyhaar/encuesta-wrangler/pkg/table"

// FrequencyColumns is the fixed output schema of ExtractFrequency.
var FrequencyColumns = []string{"freq_ord", "freq_cat"}

// freqOrder is the ordered viewing-frequency scale. The label doubles as the
// categorical value; answers outside the scale become null in both outputs.
var freqOrder = []string{
	"Nunca",
	"Menos de una vez al mes",
	"Al menos dos veces al mes",
	"Semanalmente",
	"Veo cada partido que puedo",
}

// ExtractFrequency maps a viewing-frequency answer to its ordinal rank and
// its categorical label. Exact label matching, no normalization.
func ExtractFrequency(raw table.Cell) []table.Cell {
	s, ok := raw.AsString()
	if !ok {
		return []table.Cell{table.Null(), table.Null()}
	}
	for i, label := range freqOrder {
		if s == label {
			return []table.Cell{table.Int(int64(i)), table.String(label)}
		}
	}
	return []table.Cell{table.Null(), table.Null()}
}

// NonFanColumns is the fixed output schema of ExtractNonFan.
var NonFanColumns = []string{"non_fan"}

// ExtractNonFan derives the fan segment from the frequency answer. Only the
// literal "Nunca" marks a non-fan; every other value, missing included, is a
// fan. Preserved as-is from the original segmentation.
func ExtractNonFan(raw table.Cell) []table.Cell {
	if s, ok := raw.AsString(); ok && s == "Nunca" {
		return []table.Cell{table.String("No Fan")}
	}
	return []table.Cell{table.String("Fan")}
}
