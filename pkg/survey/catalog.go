package survey

import (
	"fmt"
	"strings"
)

// Alias maps one accepted phrase variant to a canonical tag.
type Alias struct {
	Phrase string
	Tag    string
}

// Catalog is a fixed taxonomy for one multi-select question: a declared list
// of canonical tags (the output columns, in order) and an ordered alias
// table. Matching is substring containment over a normalized answer.
//
// An alias whose tag is not declared is kept but never produces a column:
// the match is silently dropped. Such aliases are reported by Findings so
// the mismatch is visible without changing observable output.
type Catalog struct {
	name    string
	prefix  string
	tags    []string
	aliases []Alias
	decl    map[string]bool
}

// NewCatalog builds a catalog. The tag list is the declared output schema;
// prefix is prepended to every tag to form column names (e.g. "canal__").
func NewCatalog(name, prefix string, tags []string, aliases []Alias) *Catalog {
	decl := make(map[string]bool, len(tags))
	for _, t := range tags {
		decl[t] = true
	}
	return &Catalog{name: name, prefix: prefix, tags: tags, aliases: aliases, decl: decl}
}

// Name returns the catalog identifier.
func (c *Catalog) Name() string { return c.name }

// Columns returns the declared output column names in order.
func (c *Catalog) Columns() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = c.prefix + t
	}
	return out
}

// Match tests every alias for containment in the normalized answer and
// returns the set of declared tags hit. Aliases pointing at undeclared tags
// match but contribute nothing.
func (c *Catalog) Match(normalized string) map[string]bool {
	hits := make(map[string]bool)
	for _, a := range c.aliases {
		if !strings.Contains(normalized, a.Phrase) {
			continue
		}
		if !c.decl[a.Tag] {
			continue
		}
		hits[a.Tag] = true
	}
	return hits
}

// Findings lists construction-time inconsistencies: aliases whose canonical
// tag is not in the declared column list, and declared tags no alias can
// ever produce. Neither is fixed at match time.
func (c *Catalog) Findings() []string {
	var out []string
	for _, a := range c.aliases {
		if !c.decl[a.Tag] {
			out = append(out, fmt.Sprintf("catalog %s: alias %q maps to undeclared tag %q (matches dropped)", c.name, a.Phrase, a.Tag))
		}
	}
	reachable := make(map[string]bool)
	for _, a := range c.aliases {
		reachable[a.Tag] = true
	}
	for _, t := range c.tags {
		if !reachable[t] {
			out = append(out, fmt.Sprintf("catalog %s: tag %q has no alias (column always 0)", c.name, t))
		}
	}
	return out
}

// SplitMulti splits a comma-joined multi-select answer into the set of
// trimmed option strings. Used by the exact-match extractors; the
// substring-match catalogs above work on the whole normalized answer
// instead.
func SplitMulti(s string) map[string]bool {
	out := make(map[string]bool)
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out[p] = true
		}
	}
	return out
}

// anyIn reports whether any phrase is a member of the option set.
func anyIn(opts map[string]bool, phrases []string) bool {
	for _, p := range phrases {
		if opts[p] {
			return true
		}
	}
	return false
}
