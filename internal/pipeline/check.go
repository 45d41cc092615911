package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/hamlog/contactlog/internal/failure"
	"github.com/hamlog/contactlog/internal/render"
)

// CheckResult reports how a published page compares to its sources.
type CheckResult struct {
	Output      string   `json:"output"`
	Current     bool     `json:"current"`
	Differences []string `json:"differences,omitempty"`
}

// Check compares the page at src.Output with what Run would produce from
// the current sources, rendered with the year already printed in the page
// footer. Any byte difference makes the page stale; the reported
// differences come from reading both pages back. A page that is missing or
// differs yields a failure.StalePage error together with the result.
func (p *Pipeline) Check(ctx context.Context, src Sources) (*CheckResult, error) {
	contacts, profile, err := p.Load(src)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "pipeline: check cancelled")
	}

	result := &CheckResult{Output: src.Output}

	page, err := afero.ReadFile(p.fsys, src.Output)
	if err != nil {
		result.Differences = []string{"page cannot be read: " + err.Error()}
		return result, failure.New(failure.StalePage, src.Output, eris.Wrap(err, "pipeline: read page"))
	}

	got, err := render.Inspect(bytes.NewReader(page))
	if err != nil {
		result.Differences = []string{err.Error()}
		return result, failure.New(failure.StalePage, src.Output, err)
	}

	opts := p.renderOptions()
	if year, ok := render.FooterYear(got.Footer); ok {
		opts.GeneratedAt = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	fresh, err := render.RenderLog(contacts, profile, opts)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(page, fresh) {
		result.Current = true
		return result, nil
	}

	want, err := render.Inspect(bytes.NewReader(fresh))
	if err != nil {
		return nil, err
	}
	result.Differences = diffPages(got, want)

	zap.L().Warn("pipeline: page is stale",
		zap.String("output", src.Output),
		zap.Strings("differences", result.Differences),
	)
	return result, failure.New(failure.StalePage, src.Output,
		eris.Errorf("pipeline: %s", strings.Join(result.Differences, "; ")))
}

// diffPages lists what differs between the published page and a fresh one.
// It never returns an empty list.
func diffPages(got, want *render.PageSummary) []string {
	var diffs []string
	if !slices.Equal(got.Profile, want.Profile) {
		diffs = append(diffs, fmt.Sprintf("profile: page has %q, log has %q", got.Profile, want.Profile))
	}
	if !slices.Equal(got.Headers, want.Headers) {
		diffs = append(diffs, fmt.Sprintf("headers: page has %q, log has %q", got.Headers, want.Headers))
	}
	if got.Rows != want.Rows {
		diffs = append(diffs, fmt.Sprintf("rows: page has %d, log has %d", got.Rows, want.Rows))
	} else {
		for i := range want.Cells {
			if !slices.Equal(got.Cells[i], want.Cells[i]) {
				diffs = append(diffs, fmt.Sprintf("row %d: page has %q, log has %q", i+1, got.Cells[i], want.Cells[i]))
				break
			}
		}
	}
	if got.Footer != want.Footer {
		diffs = append(diffs, fmt.Sprintf("footer: page has %q, log has %q", got.Footer, want.Footer))
	}
	if len(diffs) == 0 {
		diffs = append(diffs, "page markup differs from a fresh render")
	}
	return diffs
}
