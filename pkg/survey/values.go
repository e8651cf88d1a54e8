package survey

import "github.com/hazyhaar/encuesta-wrangler/pkg/table"

// valueOptions lists, per associated-value column, the exact survey phrases
// that set the flag. Two phrase lists overlap on purpose: one hand-written
// answer evidences both effort and professionalism.
var valueOptions = []struct {
	column  string
	phrases []string
}{
	{"valor__pasion", []string{"Pasión"}},
	{"valor__liderazgo", []string{"Liderazgo", "Lealtad"}},
	{"valor__profesionalismo", []string{
		"Profesionalismo",
		"En proceso de profesionalismo",
		"Perseverancia y honestidad",
	}},
	{"valor__esfuerzo", []string{"Esfuerzo", "Perseverancia y honestidad"}},
	{"valor__resiliencia", []string{
		"Resiliencia",
		"Todo les cuesta el doble con tal de alcanzar lo mismo que el fútbol masculino obtiene por el hecho de existir.",
	}},
	{"valor__empoderamiento", []string{"Empoderamiento"}},
	{"valor__igualdad", []string{"Igualdad", "Inclusión"}},
	{"valor__superacion", []string{"Superación"}},
	{"valor__trabajo_equipo", []string{"Trabajo en equipo"}},
}

// ValueColumns is the fixed output schema of ExtractValues.
var ValueColumns = func() []string {
	out := make([]string, len(valueOptions))
	for i, o := range valueOptions {
		out[i] = o.column
	}
	return out
}()

// ExtractValues derives the values-associated-with-the-sport flags from a
// comma-joined multi-select answer. Exact token matching.
func ExtractValues(raw table.Cell) []table.Cell {
	flags := zeros(len(valueOptions))
	s, ok := raw.AsString()
	if !ok {
		return flags
	}
	opts := SplitMulti(s)
	for i, o := range valueOptions {
		if anyIn(opts, o.phrases) {
			flags[i] = table.Int(1)
		}
	}
	return flags
}
