package csv2web

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-csv2web/internal/assets"
	"github.com/alnah/go-csv2web/internal/fileutil"
	"github.com/alnah/go-csv2web/internal/textenc"
)

// ProgressFunc observes stage transitions. elapsed is measured from the
// start of the run.
type ProgressFunc func(stage Stage, elapsed time.Duration)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithProgress registers a callback invoked on every stage transition.
func WithProgress(fn ProgressFunc) Option {
	return func(p *Pipeline) { p.progress = fn }
}

// WithClock replaces time.Now for elapsed-time reporting.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// Pipeline runs the delimiter → ingest → transform → render → write chain
// for one Config. The record collection of a run is created and dropped
// inside Run; it is never stored on the Pipeline. A Pipeline is not safe
// for concurrent use.
type Pipeline struct {
	cfg         Config
	transformer *MarkupTransformer
	progress    ProgressFunc
	now         func() time.Time
	start       time.Time // start of the current run
}

// NewPipeline validates cfg and prepares a pipeline.
// Returns ErrConfig if the configuration is invalid.
func NewPipeline(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := textenc.Lookup(cfg.Encoding); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	p := &Pipeline{
		cfg:         cfg,
		transformer: NewMarkupTransformer(cfg.MarkupPrefix, cfg.Sanitize),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run executes one full pass and writes the output file.
// Any error is fatal: nothing is written unless every stage succeeds.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	html, coll, delim, err := p.build(ctx)
	if err != nil {
		return nil, err
	}

	p.report(StageWriting)
	if err := WriteOutput(p.cfg.OutputPath, html); err != nil {
		return nil, p.fail(err)
	}
	p.report(StageDone)

	return &Result{
		OutputPath: p.cfg.OutputPath,
		Delimiter:  delim,
		Columns:    coll.Columns,
		Records:    coll.Len(),
		HTML:       html,
	}, nil
}

// Render executes the pipeline up to rendering and returns the document
// without writing it.
func (p *Pipeline) Render(ctx context.Context) ([]byte, error) {
	html, _, _, err := p.build(ctx)
	return html, err
}

func (p *Pipeline) build(ctx context.Context) ([]byte, *Collection, rune, error) {
	p.start = p.now()
	p.report(StageStart)
	p.report(StageConfigured)

	delim := ResolveDelimiter(p.cfg.DataType, p.cfg.InputPath)
	p.report(StageDelimiterResolved)

	p.report(StageIngesting)
	coll, err := p.ingestFile(ctx, delim)
	if err != nil {
		return nil, nil, 0, p.fail(err)
	}
	p.report(StageIngested)

	p.report(StageRendering)
	tmpl, partials, err := p.loadTemplate()
	if err != nil {
		return nil, nil, 0, p.fail(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, 0, p.fail(err)
	}

	renderer := NewRenderer(
		WithCollectionName(p.cfg.Collection),
		WithMarkupPrefix(p.cfg.MarkupPrefix),
		WithEscapeMode(p.cfg.Escape),
		WithTitle(p.cfg.title()),
		WithPartials(partials),
	)
	html, err := renderer.Render(tmpl, coll)
	if err != nil {
		return nil, nil, 0, p.fail(err)
	}
	p.report(StageRendered)

	return html, coll, delim, nil
}

// ingestFile opens, decodes and ingests the input file. The file is closed
// on every path.
func (p *Pipeline) ingestFile(ctx context.Context, delim rune) (*Collection, error) {
	f, err := os.Open(p.cfg.InputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: opening input: %w", ErrFile, err)
	}
	defer func() { _ = f.Close() }()

	r, err := textenc.NewReader(f, p.cfg.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	coll, err := Ingest(ctx, r, delim, p.transformer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.cfg.InputPath, err)
	}
	return coll, nil
}

// loadTemplate reads the template file, or a built-in template when the
// configured value is a bare name, and builds the partial provider for it.
// File templates find partials in their own directory first.
func (p *Pipeline) loadTemplate() (string, PartialProvider, error) {
	ref := p.cfg.TemplatePath

	var dirs []string
	var content string

	if assets.IsBuiltinName(ref) && !fileutil.FileExists(ref) {
		tmpl, err := assets.LoadTemplate(ref)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrFile, err)
		}
		content = tmpl
	} else {
		data, err := os.ReadFile(ref) // #nosec G304 -- template path is user-provided
		if err != nil {
			return "", nil, fmt.Errorf("%w: reading template: %w", ErrFile, err)
		}
		content = string(data)
		dirs = append(dirs, filepath.Dir(ref))
	}
	dirs = append(dirs, p.cfg.PartialsDir)

	partials, err := assets.NewPartialResolver(dirs...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: partials: %w", ErrConfig, err)
	}
	return content, partials, nil
}

func (p *Pipeline) report(stage Stage) {
	if p.progress != nil {
		p.progress(stage, p.now().Sub(p.start))
	}
}

func (p *Pipeline) fail(err error) error {
	p.report(StageFailed)
	return err
}

// Run builds a pipeline for cfg and executes it.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Result, error) {
	p, err := NewPipeline(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx)
}
