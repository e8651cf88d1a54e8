package survey

import "github.com/hazyhaar/encuesta-wrangler/pkg/table"

// nonViewingOptions lists, per reason-for-not-watching column, the exact
// survey phrases that set the flag.
var nonViewingOptions = []struct {
	column  string
	phrases []string
}{
	{"no_ves__prefiere_masculino", []string{
		"Prefiero ver fútbol masculino",
		"Prefiero ver fútbol masculino, prefiero ver nauru vs vanuatu sub-15",
	}},
	{"no_ves__no_se_donde_ver", []string{"No sé dónde verlo / no está disponible"}},
	{"no_ves__nivel_competitivo", []string{"Siento que no tiene suficiente nivel competitivo"}},
	{"no_ves__no_identificacion", []string{"No me identifico con los equipos o jugadoras"}},
	{"no_ves__no_interesa_en_general", []string{"No me interesa el fútbol en general"}},
	{"no_ves__no_tiempo", []string{"No tengo tiempo"}},
	{"no_ves__nunca_lo_plantee", []string{"Nunca me lo he planteado"}},
	{"no_ves__otro", []string{"No veo la tele"}},
}

// NonViewingColumns is the fixed output schema of ExtractNonViewing.
var NonViewingColumns = func() []string {
	out := make([]string, len(nonViewingOptions))
	for i, o := range nonViewingOptions {
		out[i] = o.column
	}
	return out
}()

// ExtractNonViewing derives the reasons-for-not-watching flags from a
// comma-joined multi-select answer. Exact token matching.
func ExtractNonViewing(raw table.Cell) []table.Cell {
	flags := zeros(len(nonViewingOptions))
	s, ok := raw.AsString()
	if !ok {
		return flags
	}
	opts := SplitMulti(s)
	for i, o := range nonViewingOptions {
		if anyIn(opts, o.phrases) {
			flags[i] = table.Int(1)
		}
	}
	return flags
}

// needOptions lists, per would-raise-interest column, the exact survey
// phrases that set the flag.
var needOptions = []struct {
	column  string
	phrases []string
}{
	{"need__mas_difusion", []string{"Más difusión en TV o redes"}},
	{"need__jugadoras_conocidas_historias", []string{"Jugadoras más conocidas o con historias personales"}},
	{"need__mejor_nivel", []string{"Mejor nivel competitivo"}},
	{"need__clubes_profesionales", []string{"Clubes o ligas más profesionales"}},
	{"need__mayor_separacion_masculino", []string{"Mayor separación del fútbol masculino"}},
	{"need__mas_contenido_atractivo", []string{"Más contenido atractivo"}},
	{"need__mayor_asociacion_con_marcas", []string{"Asociación con marcas que me atraen"}},
	{"need__recomendacion_influencer", []string{"Que lo recomiende alguien que sigo"}},
	{"need__nada", []string{"Nada me haría verlo"}},
}

// NeedColumns is the fixed output schema of ExtractNeeds.
var NeedColumns = func() []string {
	out := make([]string, len(needOptions))
	for i, o := range needOptions {
		out[i] = o.column
	}
	return out
}()

// ExtractNeeds derives the what-would-raise-interest flags from a
// comma-joined multi-select answer. Exact token matching.
func ExtractNeeds(raw table.Cell) []table.Cell {
	flags := zeros(len(needOptions))
	s, ok := raw.AsString()
	if !ok {
		return flags
	}
	opts := SplitMulti(s)
	for i, o := range needOptions {
		if anyIn(opts, o.phrases) {
			flags[i] = table.Int(1)
		}
	}
	return flags
}
