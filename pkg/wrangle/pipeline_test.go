package wrangle

import (
	"testing"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

func newRawTable(t *testing.T) *table.Table {
	t.Helper()
	tb := table.New(3)
	add := func(name string, cells []table.Cell) {
		t.Helper()
		if err := tb.Add(name, cells); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}
	add("Marca temporal", []table.Cell{
		table.String("2026/03/01"), table.String("2026/03/02"), table.String("2026/03/03"),
	})
	add(QuestionFrequency, []table.Cell{
		table.String("Nunca"), table.String("Semanalmente"), table.Null(),
	})
	add(QuestionPerception, []table.Cell{
		table.String("Mucho más favorable"), table.String("Sin cambio"), table.Null(),
	})
	add(QuestionChallenges, []table.Cell{
		table.String("Estereotipos de género, Bajos salarios de jugadoras"),
		table.Null(),
		table.String("Estigma social"),
	})
	add(QuestionAge, []table.Cell{
		table.String("25-34"), table.String("55+"), table.String("edad desconocida"),
	})
	add(QuestionGender, []table.Cell{
		table.String("Femenino"), table.String("Masculino"), table.Null(),
	})
	add(DroppedColumns[0], []table.Cell{
		table.String("x"), table.String("y"), table.String("z"),
	})
	return tb
}

func TestPipelineRun(t *testing.T) {
	raw := newRawTable(t)
	out, err := New(nil).Run(raw)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Original columns preserved, plumbing column dropped.
	if !out.Has("Marca temporal") || !out.Has(QuestionFrequency) {
		t.Error("original columns should be preserved")
	}
	if out.Has(DroppedColumns[0]) {
		t.Error("plumbing column should be dropped")
	}

	// The raw table is untouched.
	if !raw.Has(DroppedColumns[0]) || raw.Has("freq_ord") {
		t.Error("raw table was mutated")
	}

	// Segment label: only the literal "Nunca" is a non-fan.
	nonFan, _ := out.Column("non_fan")
	for i, want := range []string{"No Fan", "Fan", "Fan"} {
		if s, _ := nonFan[i].AsString(); s != want {
			t.Errorf("non_fan[%d] = %v, want %q", i, nonFan[i], want)
		}
	}

	// Ordinal extraction with null propagation.
	percep, _ := out.Column("percep_patrocinio_ord")
	if n, _ := percep[0].AsInt(); n != 2 {
		t.Errorf("percep[0] = %v, want 2", percep[0])
	}
	if n, _ := percep[1].AsInt(); n != 0 {
		t.Errorf("percep[1] = %v, want 0", percep[1])
	}
	if !percep[2].IsNull() {
		t.Errorf("percep[2] = %v, want null", percep[2])
	}

	// Multi-select flags: missing answer defaults to zero, not null.
	stereo, _ := out.Column("desafio_estereotipos_genero")
	salarios, _ := out.Column("desafio_bajos_salarios")
	estigma, _ := out.Column("desafio_estigma_social")
	if n, _ := stereo[0].AsInt(); n != 1 {
		t.Errorf("desafio_estereotipos_genero[0] = %v, want 1", stereo[0])
	}
	if n, _ := salarios[0].AsInt(); n != 1 {
		t.Errorf("desafio_bajos_salarios[0] = %v, want 1", salarios[0])
	}
	if n, _ := stereo[1].AsInt(); n != 0 {
		t.Errorf("desafio_estereotipos_genero[1] = %v, want 0", stereo[1])
	}
	if n, _ := estigma[2].AsInt(); n != 1 {
		t.Errorf("desafio_estigma_social[2] = %v, want 1", estigma[2])
	}

	// Demographics.
	ord, _ := out.Column("edad_ordinal")
	mid, _ := out.Column("edad_midpoint")
	if n, _ := ord[0].AsInt(); n != 2 {
		t.Errorf("edad_ordinal[0] = %v, want 2", ord[0])
	}
	if f, _ := mid[0].AsFloat(); f != 30.0 {
		t.Errorf("edad_midpoint[0] = %v, want 30", mid[0])
	}
	if !ord[2].IsNull() || !mid[2].IsNull() {
		t.Error("unknown age bracket should be null in both outputs")
	}
	if !out.Has("genero_Femenino") || !out.Has("genero_Masculino") {
		t.Errorf("gender dummies missing: %v", out.Names())
	}
}

func TestPipelineSkipsMissingColumns(t *testing.T) {
	tb := table.New(1)
	tb.Add(QuestionAge, []table.Cell{table.String("18-24")})

	out, err := New(nil).Run(tb)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Has("edad_ordinal") {
		t.Error("present source should still be extracted")
	}
	if out.Has("freq_ord") || out.Has("canal__radio") {
		t.Error("steps without a source column should be skipped")
	}
}

func TestPipelineStableSchema(t *testing.T) {
	// Two datasets with different answers produce the same derived columns
	// (gender dummies excepted by design).
	run := func(answer table.Cell) []string {
		tb := table.New(1)
		tb.Add(QuestionChannels, []table.Cell{answer})
		out, err := New(nil).Run(tb)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return out.Names()
	}
	a := run(table.String("Radio"))
	b := run(table.Null())
	if len(a) != len(b) {
		t.Fatalf("schema differs: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("schema differs at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestPipelineSourceOverrides(t *testing.T) {
	tb := table.New(1)
	tb.Add("edad (bracket)", []table.Cell{table.String("35-44")})

	p := New(nil, WithSources(map[string]string{"edad": "edad (bracket)"}))
	out, err := p.Run(tb)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	ord, ok := out.Column("edad_ordinal")
	if !ok {
		t.Fatal("edad_ordinal missing after source override")
	}
	if n, _ := ord[0].AsInt(); n != 3 {
		t.Errorf("edad_ordinal[0] = %v, want 3", ord[0])
	}
}

func TestFindings(t *testing.T) {
	found := false
	for _, f := range Findings() {
		if f != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected at least the content-catalog finding")
	}
}
