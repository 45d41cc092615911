package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/hamlog/contactlog/internal/config"
	"github.com/hamlog/contactlog/internal/loader"
	"github.com/hamlog/contactlog/internal/model"
	"github.com/hamlog/contactlog/internal/publish"
	"github.com/hamlog/contactlog/internal/render"
)

// Sources names the inputs and the output of one run.
type Sources struct {
	CSV     string `json:"csv"`
	Profile string `json:"profile"`
	Output  string `json:"output"`
}

// SourcesFromConfig returns the configured source locations.
func SourcesFromConfig(cfg config.SourcesConfig) Sources {
	return Sources{CSV: cfg.CSV, Profile: cfg.Profile, Output: cfg.Output}
}

// Result summarizes a completed generation run.
type Result struct {
	Output   string              `json:"output"`
	Columns  int                 `json:"columns"`
	Rows     int                 `json:"rows"`
	Rejected []model.RejectedRow `json:"rejected,omitempty"`
	Bytes    int                 `json:"bytes"`
}

// Pipeline runs load → render → publish for one contact log.
type Pipeline struct {
	fsys   afero.Fs
	loader *loader.Loader
	writer *publish.Writer
	render render.Options
	now    func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New creates a Pipeline reading and writing through fsys.
func New(cfg *config.Config, fsys afero.Fs, opts ...Option) *Pipeline {
	p := &Pipeline{
		fsys:   fsys,
		loader: loader.New(fsys, loader.OptionsFromConfig(cfg.Loader)),
		writer: publish.New(fsys),
		render: render.OptionsFromConfig(cfg.Render),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads both sources without rendering or writing anything.
func (p *Pipeline) Load(src Sources) (*model.ContactLog, model.Profile, error) {
	return p.loader.Load(src.CSV, src.Profile)
}

// Run loads the sources, renders the page and replaces the output file.
// On error the output file is left as it was.
func (p *Pipeline) Run(ctx context.Context, src Sources) (*Result, error) {
	log := zap.L().With(zap.String("csv", src.CSV), zap.String("profile", src.Profile))
	start := time.Now()

	contacts, profile, err := p.Load(src)
	if err != nil {
		return nil, err
	}

	page, err := render.RenderLog(contacts, profile, p.renderOptions())
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "pipeline: cancelled before publish")
	}
	if err := p.writer.Write(src.Output, page); err != nil {
		return nil, err
	}

	result := &Result{
		Output:   src.Output,
		Columns:  contacts.Schema.Len(),
		Rows:     len(contacts.Records),
		Rejected: contacts.Rejected,
		Bytes:    len(page),
	}
	log.Info("pipeline: page generated",
		zap.String("output", result.Output),
		zap.Int("columns", result.Columns),
		zap.Int("rows", result.Rows),
		zap.Int("rejected", len(result.Rejected)),
		zap.Int("bytes", result.Bytes),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func (p *Pipeline) renderOptions() render.Options {
	opts := p.render
	opts.GeneratedAt = p.now()
	return opts
}
