package wrangle

import (
	"fmt"
	"log/slog"

	"github.com/hazyhaar/encuesta-wrangler/pkg/survey"
	"github.com/hazyhaar/encuesta-wrangler/pkg/table"
)

// Pipeline applies the configured steps to a raw response table.
type Pipeline struct {
	steps  []Step
	drops  []string
	logger *slog.Logger
}

// Option adjusts a Pipeline at construction.
type Option func(*Pipeline)

// WithSources overrides step source headers by step name. Unknown names are
// ignored; an empty header disables the step.
func WithSources(overrides map[string]string) Option {
	return func(p *Pipeline) {
		for i, s := range p.steps {
			if src, ok := overrides[s.Name]; ok {
				p.steps[i].Source = src
			}
		}
	}
}

// New returns a Pipeline with the default steps and drop list.
func New(logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{steps: Steps(), drops: DroppedColumns, logger: logger}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Steps returns the pipeline's steps after option overrides.
func (p *Pipeline) Steps() []Step { return p.steps }

// Findings reports the catalog inconsistencies carried over from the
// original alias tables. They are informational; matching behavior keeps
// the silent-drop semantics.
func Findings() []string {
	var out []string
	for _, c := range []*survey.Catalog{survey.ChannelCatalog, survey.SocialCatalog, survey.ContentCatalog} {
		out = append(out, c.Findings()...)
	}
	return out
}

// Run copies the raw table, removes the survey-plumbing columns, and appends
// every step's derived columns. A step whose source column is absent is
// skipped with a warning; one step's failure never corrupts the columns
// already appended.
func (p *Pipeline) Run(raw *table.Table) (*table.Table, error) {
	out := raw.Clone()
	for _, name := range p.drops {
		out.Drop(name)
	}

	for _, step := range p.steps {
		if step.Source == "" {
			p.logger.Warn("step disabled", "step", step.Name)
			continue
		}
		src, ok := out.Column(step.Source)
		if !ok {
			p.logger.Warn("source column missing, step skipped", "step", step.Name, "column", step.Source)
			continue
		}
		names, cols := step.apply(src)
		for i, name := range names {
			if err := out.Add(name, cols[i]); err != nil {
				return nil, fmt.Errorf("step %s: %w", step.Name, err)
			}
		}
	}
	return out, nil
}
