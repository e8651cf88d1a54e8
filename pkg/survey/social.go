package survey

import (
	"strings"

	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// SocialCatalog maps social-platform phrase variants to canonical platform
// tags. Substring matching over the soft-normalized answer.
var SocialCatalog = NewCatalog("redes", "rs__",
	[]string{"instagram", "twitter_x", "facebook", "tiktok", "youtube"},
	[]Alias{
		{"instagram", "instagram"},
		{"twitter/x", "twitter_x"},
		{"twitter", "twitter_x"},
		{"facebook", "facebook"},
		{"tiktok", "tiktok"},
		{"youtube", "youtube"},
		{"you tube", "youtube"},
	})

// SocialColumns is the fixed output schema of ExtractSocial.
var SocialColumns = append(SocialCatalog.Columns(), "rs__no_redes", "rs__no_aplica")

// ExtractSocial derives social-platform flags. Both special answers
// short-circuit: "no aplica" wins over "no lo sigo en redes sociales", and
// either suppresses the ordinary flags.
func ExtractSocial(raw table.Cell) []table.Cell {
	n := len(SocialColumns)
	flags := zeros(n)
	s, ok := raw.AsString()
	if !ok {
		return flags
	}
	t := NormalizeSoft(s)
	if strings.Contains(t, "no aplica") {
		flags[n-1] = table.Int(1)
		return flags
	}
	if strings.Contains(t, "no lo sigo en redes sociales") {
		flags[n-2] = table.Int(1)
		return flags
	}
	hits := SocialCatalog.Match(t)
	for i, tag := range SocialCatalog.tags {
		if hits[tag] {
			flags[i] = table.Int(1)
		}
	}
	return flags
}
