// Package render turns a loaded contact log and operator profile into a
// single self-contained HTML page.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/rotisserie/eris"

	"github.com/hamlog/contactlog/internal/config"
	"github.com/hamlog/contactlog/internal/model"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// Options controls page rendering.
type Options struct {
	// Organization is printed in the footer before the callsign.
	Organization string
	// Lang is the document language attribute.
	Lang string
	// RowsPerPage is the client-side pagination size.
	RowsPerPage int
	// PrettifyHeaders separates a non-Latin label from its Latin
	// abbreviation in table headers. Off keeps headers verbatim.
	PrettifyHeaders bool
	// ShowExtraProfile lists unrecognized profile keys after the known ones.
	ShowExtraProfile bool
	// UppercaseCallsign displays the callsign in upper case.
	UppercaseCallsign bool
	// GeneratedAt supplies the footer year. Zero means now.
	GeneratedAt time.Time
}

// OptionsFromConfig builds render options from the application config.
func OptionsFromConfig(cfg config.RenderConfig) Options {
	return Options{
		Organization:      cfg.Organization,
		Lang:              cfg.Lang,
		RowsPerPage:       cfg.RowsPerPage,
		PrettifyHeaders:   cfg.PrettifyHeaders,
		ShowExtraProfile:  cfg.ShowExtraProfile,
		UppercaseCallsign: cfg.UppercaseCallsign,
	}
}

type pageData struct {
	Lang         string
	Callsign     string
	Organization string
	Year         int
	RowsPerPage  int
	Profile      []ProfileLine
	Headers      []string
	Rows         [][]string
}

// Render produces the page for schema, records and profile. Every value is
// HTML-escaped by the template. The output depends only on the inputs and
// the year of opts.GeneratedAt.
func Render(schema model.ColumnSchema, records []model.ContactRecord, profile model.Profile, opts Options) ([]byte, error) {
	generated := opts.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	rowsPerPage := opts.RowsPerPage
	if rowsPerPage < 1 {
		rowsPerPage = 20
	}
	lang := opts.Lang
	if lang == "" {
		lang = "zh-CN"
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		cells := make([]string, schema.Len())
		copy(cells, rec.Values)
		rows[i] = cells
	}

	data := pageData{
		Lang:         lang,
		Callsign:     Callsign(profile, opts.UppercaseCallsign),
		Organization: opts.Organization,
		Year:         generated.Year(),
		RowsPerPage:  rowsPerPage,
		Profile:      ProfileLines(profile, opts),
		Headers:      HeaderLabels(schema, opts.PrettifyHeaders),
		Rows:         rows,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, eris.Wrap(err, "render: execute page template")
	}
	return buf.Bytes(), nil
}

// RenderLog renders a loaded contact log.
func RenderLog(contacts *model.ContactLog, profile model.Profile, opts Options) ([]byte, error) {
	if contacts == nil {
		return nil, eris.New("render: nil contact log")
	}
	return Render(contacts.Schema, contacts.Records, profile, opts)
}
