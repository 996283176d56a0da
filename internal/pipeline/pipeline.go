// Package pipeline wires intake normalization, generation, validation, and
// auto-fix into one entry point. Generation prefers a configured AI
// generator and falls back to the deterministic composer whenever the AI
// path is unavailable or fails.
package pipeline

import (
	"context"
	"log"

	"siteforge/internal/autofix"
	"siteforge/internal/composer"
	"siteforge/internal/intake"
	"siteforge/internal/sitespec"
	"siteforge/internal/validate"
)

// Generator is the external generative-model call path. Implementations
// must return a document with Metadata.Method set to "ai".
type Generator interface {
	GenerateSiteIntent(ctx context.Context, rec sitespec.IntakeRecord) (*sitespec.SiteIntentDocument, error)
}

// Options controls the post-generation steps.
type Options struct {
	AutoFix bool
}

// Outcome is everything one pipeline run produced.
type Outcome struct {
	Document *sitespec.SiteIntentDocument
	Warnings []sitespec.ValidationWarning
	Fixes    []sitespec.AutoFix
	SubType  string
	Notes    []string
}

// Pipeline runs intake through to a validated document.
type Pipeline struct {
	composer *composer.Composer
	ai       Generator
	logger   *log.Logger
}

// New builds a pipeline. ai may be nil, in which case every run takes the
// deterministic path. logger may be nil for silence.
func New(comp *composer.Composer, ai Generator, logger *log.Logger) *Pipeline {
	if comp == nil {
		comp = composer.New(nil)
	}
	return &Pipeline{composer: comp, ai: ai, logger: logger}
}

// Run normalizes the intake record, generates a document, validates it, and
// optionally auto-fixes it. It never returns an error: generation failures
// fall back to the deterministic composer.
func (p *Pipeline) Run(ctx context.Context, rec sitespec.IntakeRecord, opts Options) Outcome {
	rec, notes := intake.Normalize(rec)
	out := Outcome{Notes: notes}

	doc := p.generate(ctx, rec)
	vctx := validate.Context{Description: rec.Description, SiteType: rec.SiteType}

	if opts.AutoFix {
		fixed := autofix.Apply(doc, autofix.Context(vctx))
		doc = fixed.Spec
		out.Fixes = fixed.Fixes
	}

	res := validate.Check(doc, vctx)
	out.Document = doc
	out.Warnings = res.Warnings
	out.SubType = res.SubType
	return out
}

func (p *Pipeline) generate(ctx context.Context, rec sitespec.IntakeRecord) *sitespec.SiteIntentDocument {
	if p.ai != nil {
		doc, err := p.ai.GenerateSiteIntent(ctx, rec)
		if err == nil {
			return doc
		}
		if p.logger != nil {
			p.logger.Printf("session %s: ai generation failed, using deterministic composer: %v", rec.SessionID, err)
		}
	}
	return p.composer.Build(rec)
}
