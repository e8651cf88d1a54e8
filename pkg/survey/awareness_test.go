package survey

import (
	"testing"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

func TestExtractLeagueAwareness(t *testing.T) {
	tests := []struct {
		input string
		want  table.Cell
	}{
		{"No, ninguna", table.Int(0)},
		{"Me suenan, pero no conozco una en concreto", table.Int(1)},
		{"Sí, una o dos", table.Int(2)},
		{"Sí, varias", table.Int(3)},
		{"todas", table.Null()},
	}
	for _, tt := range tests {
		got := ExtractLeagueAwareness(table.String(tt.input))
		if !got[0].Equal(tt.want) {
			t.Errorf("ExtractLeagueAwareness(%q) = %v, want %v", tt.input, got[0], tt.want)
		}
	}
}

func TestExtractContentRecency(t *testing.T) {
	tests := []struct {
		input string
		want  table.Cell
	}{
		{"No", table.Int(-1)},
		{"No lo recuerdo bien", table.Int(0)},
		{"Sí, alguna vez", table.Int(1)},
		{"Sí, muchas veces", table.Int(2)},
	}
	for _, tt := range tests {
		got := ExtractContentRecency(table.String(tt.input))
		if !got[0].Equal(tt.want) {
			t.Errorf("ExtractContentRecency(%q) = %v, want %v", tt.input, got[0], tt.want)
		}
	}
}

func TestExtractGeneralPerception(t *testing.T) {
	tests := []struct {
		input          string
		ord, noOpinion table.Cell
	}{
		{"Amateur", table.Float(-1), table.Int(0)},
		{"Aún en crecimiento", table.Float(1), table.Int(0)},
		{"Profesional, pero poco difundido", table.Float(2), table.Int(0)},
		{"Igual de valioso que el masculino, pero subestimado", table.Float(3), table.Int(0)},
		{"No tengo una opinión formada", table.Float(0), table.Int(1)},
		{"otra", table.Null(), table.Int(0)},
	}
	for _, tt := range tests {
		got := ExtractGeneralPerception(table.String(tt.input))
		if !got[0].Equal(tt.ord) || !got[1].Equal(tt.noOpinion) {
			t.Errorf("ExtractGeneralPerception(%q) = %v, want [%v %v]", tt.input, got, tt.ord, tt.noOpinion)
		}
	}

	got := ExtractGeneralPerception(table.Null())
	if !got[0].IsNull() {
		t.Errorf("ExtractGeneralPerception(null) ord = %v, want null", got[0])
	}
	if n, _ := got[1].AsInt(); n != 0 {
		t.Errorf("ExtractGeneralPerception(null) flag = %v, want 0", got[1])
	}
}

func TestExtractProLeague(t *testing.T) {
	tests := []struct {
		input     string
		cat, code table.Cell
	}{
		{"Sí", table.String("Sí"), table.Float(1)},
		{"No", table.String("No"), table.Float(-1)},
		{"Tal vez", table.String("Tal vez"), table.Float(0)},
		{"ni idea", table.Null(), table.Null()},
	}
	for _, tt := range tests {
		got := ExtractProLeague(table.String(tt.input))
		if !got[0].Equal(tt.cat) || !got[1].Equal(tt.code) {
			t.Errorf("ExtractProLeague(%q) = %v, want [%v %v]", tt.input, got, tt.cat, tt.code)
		}
	}
}
