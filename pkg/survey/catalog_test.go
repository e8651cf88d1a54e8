package survey

import (
	"strings"
	"testing"
)

func TestCatalogMatchDropsUndeclaredTag(t *testing.T) {
	// Pins the silent-drop behavior: an alias whose canonical tag is not in
	// the declared column list matches but produces nothing.
	c := NewCatalog("test", "x__",
		[]string{"declared"},
		[]Alias{
			{"alguna frase", "declared"},
			{"otra frase", "fantasma"},
		})

	hits := c.Match("texto con otra frase adentro")
	if len(hits) != 0 {
		t.Errorf("undeclared tag produced hits: %v", hits)
	}
	hits = c.Match("texto con alguna frase adentro")
	if !hits["declared"] {
		t.Errorf("declared tag not hit: %v", hits)
	}
}

func TestCatalogFindings(t *testing.T) {
	c := NewCatalog("test", "x__",
		[]string{"declared", "huerfano"},
		[]Alias{
			{"alguna frase", "declared"},
			{"otra frase", "fantasma"},
		})

	findings := c.Findings()
	if len(findings) != 2 {
		t.Fatalf("findings = %v, want 2 entries", findings)
	}
	if !strings.Contains(findings[0], "fantasma") {
		t.Errorf("first finding should name the undeclared tag: %s", findings[0])
	}
	if !strings.Contains(findings[1], "huerfano") {
		t.Errorf("second finding should name the unreachable tag: %s", findings[1])
	}
}

func TestContentCatalogHasKnownFindings(t *testing.T) {
	// "contenido_fans" is declared but no alias produces it; the channel and
	// social catalogs are clean.
	if got := ContentCatalog.Findings(); len(got) != 1 || !strings.Contains(got[0], "contenido_fans") {
		t.Errorf("ContentCatalog.Findings() = %v", got)
	}
	if got := ChannelCatalog.Findings(); len(got) != 0 {
		t.Errorf("ChannelCatalog.Findings() = %v", got)
	}
	if got := SocialCatalog.Findings(); len(got) != 0 {
		t.Errorf("SocialCatalog.Findings() = %v", got)
	}
}

func TestSplitMulti(t *testing.T) {
	opts := SplitMulti(" Pasión , Igualdad,Esfuerzo ,, ")
	want := []string{"Pasión", "Igualdad", "Esfuerzo"}
	if len(opts) != len(want) {
		t.Fatalf("SplitMulti = %v, want %d options", opts, len(want))
	}
	for _, w := range want {
		if !opts[w] {
			t.Errorf("missing option %q in %v", w, opts)
		}
	}
}
