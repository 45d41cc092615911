// Package loader reads the contact log CSV and the operator profile into
// in-memory structures. It never writes.
package loader

import (
	"errors"
	"io/fs"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/hamlog/contactlog/internal/config"
	"github.com/hamlog/contactlog/internal/failure"
	"github.com/hamlog/contactlog/internal/model"
)

// Options controls contact log parsing.
type Options struct {
	// RowPolicy is one of config.RowPolicyPad, RowPolicySkip or RowPolicyFail.
	RowPolicy string
	// TrimSpace removes leading and trailing whitespace from cell values.
	TrimSpace bool
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// OptionsFromConfig builds loader options from the application config.
func OptionsFromConfig(cfg config.LoaderConfig) Options {
	return Options{
		RowPolicy: cfg.RowPolicy,
		TrimSpace: cfg.TrimSpace,
		Comma:     cfg.CommaRune(),
	}
}

// Loader reads sources from a filesystem.
type Loader struct {
	fsys afero.Fs
	opts Options
	log  *zap.Logger
}

// New returns a Loader reading from fsys.
func New(fsys afero.Fs, opts Options) *Loader {
	if opts.RowPolicy == "" {
		opts.RowPolicy = config.RowPolicyPad
	}
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	return &Loader{
		fsys: fsys,
		opts: opts,
		log:  zap.L().With(zap.String("component", "loader")),
	}
}

// Load reads the contact log at csvPath and the profile at profilePath.
// Any returned error is a *failure.Error.
func (l *Loader) Load(csvPath, profilePath string) (*model.ContactLog, model.Profile, error) {
	contacts, err := l.LoadContacts(csvPath)
	if err != nil {
		return nil, model.Profile{}, err
	}
	profile, err := l.LoadProfile(profilePath)
	if err != nil {
		return nil, model.Profile{}, err
	}
	return contacts, profile, nil
}

// LoadContacts reads and parses the contact log CSV at path.
func (l *Loader) LoadContacts(path string) (*model.ContactLog, error) {
	data, err := l.readText(path)
	if err != nil {
		return nil, err
	}
	contacts, err := parseContacts(data, path, l.opts)
	if err != nil {
		return nil, err
	}
	for _, rej := range contacts.Rejected {
		l.log.Warn("loader: row rejected",
			zap.String("path", path),
			zap.Int("row", rej.Row),
			zap.Int("fields", rej.Fields),
			zap.Int("expected", rej.Expected),
			zap.String("reason", rej.Reason),
		)
	}
	l.log.Debug("loader: contacts loaded",
		zap.String("path", path),
		zap.Int("columns", contacts.Schema.Len()),
		zap.Int("records", len(contacts.Records)),
		zap.Int("rejected", len(contacts.Rejected)),
	)
	return contacts, nil
}

// LoadProfile reads and parses the operator profile at path. Files ending in
// .yaml or .yml are parsed as YAML, everything else as JSON.
func (l *Loader) LoadProfile(path string) (model.Profile, error) {
	data, err := l.readText(path)
	if err != nil {
		return model.Profile{}, err
	}
	profile, dups, err := parseProfile(data, path)
	if err != nil {
		return model.Profile{}, failure.New(failure.SourceUnreadable, path, err)
	}
	for _, k := range dups {
		l.log.Warn("loader: duplicate profile key, last value wins",
			zap.String("path", path),
			zap.String("key", k),
		)
	}
	return profile, nil
}

// readText reads path and returns its content as UTF-8. A UTF-8 byte order
// mark is dropped and UTF-16 input with a byte order mark is converted.
func (l *Loader) readText(path string) ([]byte, error) {
	info, err := l.fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, failure.New(failure.SourceNotFound, path, eris.Wrap(err, "loader: stat"))
		}
		return nil, failure.New(failure.SourceUnreadable, path, eris.Wrap(err, "loader: stat"))
	}
	if info.IsDir() {
		return nil, failure.New(failure.SourceUnreadable, path, eris.New("loader: path is a directory"))
	}

	raw, err := afero.ReadFile(l.fsys, path)
	if err != nil {
		return nil, failure.New(failure.SourceUnreadable, path, eris.Wrap(err, "loader: read"))
	}

	text, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), raw)
	if err != nil {
		return nil, failure.New(failure.SourceUnreadable, path, eris.Wrap(err, "loader: decode"))
	}
	if !utf8.Valid(text) {
		return nil, failure.New(failure.SourceUnreadable, path, eris.New("loader: content is not valid UTF-8"))
	}
	return text, nil
}
