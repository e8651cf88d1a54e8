package survey

import (
	"testing"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

func TestExtractAge(t *testing.T) {
	tests := []struct {
		input         string
		ord, midpoint table.Cell
	}{
		{"Menor de 18", table.Int(0), table.Float(16.5)},
		{"18-24", table.Int(1), table.Float(21.0)},
		{"25-34", table.Int(2), table.Float(30.0)},
		{"35-44", table.Int(3), table.Float(40.0)},
		{"45-54", table.Int(4), table.Float(50.0)},
		{"55+", table.Int(5), table.Float(60.0)},
		{"treinta", table.Null(), table.Null()},
	}
	for _, tt := range tests {
		got := ExtractAge(table.String(tt.input))
		if !got[0].Equal(tt.ord) || !got[1].Equal(tt.midpoint) {
			t.Errorf("ExtractAge(%q) = %v, want [%v %v]", tt.input, got, tt.ord, tt.midpoint)
		}
	}

	got := ExtractAge(table.Null())
	if !got[0].IsNull() || !got[1].IsNull() {
		t.Errorf("ExtractAge(null) = %v, want nulls", got)
	}
}

func TestGenderExpand(t *testing.T) {
	cells := []table.Cell{
		table.String("Femenino"),
		table.String("Masculino"),
		table.Null(),
		table.String("Femenino"),
	}
	names, cols := GenderExpand(cells)

	wantNames := []string{"genero_categoria", "genero_Femenino", "genero_Masculino"}
	if len(names) != len(wantNames) {
		t.Fatalf("names = %v, want %v", names, wantNames)
	}
	for i := range wantNames {
		if names[i] != wantNames[i] {
			t.Fatalf("names = %v, want %v", names, wantNames)
		}
	}

	if s, _ := cols[0][0].AsString(); s != "Femenino" {
		t.Errorf("categoria[0] = %v", cols[0][0])
	}
	if !cols[0][2].IsNull() {
		t.Errorf("categoria[2] = %v, want null", cols[0][2])
	}

	fem := cols[1]
	masc := cols[2]
	wantFem := []int64{1, 0, 0, 1}
	wantMasc := []int64{0, 1, 0, 0}
	for i := range cells {
		if n, _ := fem[i].AsInt(); n != wantFem[i] {
			t.Errorf("genero_Femenino[%d] = %d, want %d", i, n, wantFem[i])
		}
		if n, _ := masc[i].AsInt(); n != wantMasc[i] {
			t.Errorf("genero_Masculino[%d] = %d, want %d", i, n, wantMasc[i])
		}
	}
}

func TestGenderExpandEmpty(t *testing.T) {
	names, cols := GenderExpand([]table.Cell{table.Null(), table.Null()})
	if len(names) != 1 || names[0] != "genero_categoria" {
		t.Errorf("names = %v, want only genero_categoria", names)
	}
	if len(cols) != 1 {
		t.Errorf("cols = %d, want 1", len(cols))
	}
}
