package render

import (
	"strings"

	"github.com/hamlog/contactlog/internal/model"
)

// ProfileLine is one labelled line of the profile block.
type ProfileLine struct {
	Label string
	Value string
}

type profileField struct {
	key     string
	label   string
	aliases []string
	// always shows the line even when the value is empty.
	always bool
}

// recognizedFields are the profile keys with a fixed place in the page, in
// display order.
var recognizedFields = []profileField{
	{key: "callsign", label: "CALL", always: true},
	{key: "license", label: "CLASS", aliases: []string{"class"}, always: true},
	{key: "operator", label: "OPR", aliases: []string{"name"}},
	{key: "location", label: "QTH", aliases: []string{"qth"}},
	{key: "grid", label: "GRID", aliases: []string{"locator"}},
	{key: "email", label: "EMAIL"},
}

// lookup returns the value for f, preferring the canonical key over aliases.
func (f profileField) lookup(p model.Profile) string {
	if v, ok := p.Get(f.key); ok {
		return v
	}
	for _, a := range f.aliases {
		if v, ok := p.Get(a); ok {
			return v
		}
	}
	return ""
}

// Callsign returns the operator callsign from p, or "" when absent.
func Callsign(p model.Profile, upper bool) string {
	v := recognizedFields[0].lookup(p)
	v = strings.TrimSpace(v)
	if upper {
		v = strings.ToUpper(v)
	}
	return v
}

// ProfileLines returns the profile block lines: recognized fields in fixed
// order, then (optionally) any other keys in profile order.
func ProfileLines(p model.Profile, opts Options) []ProfileLine {
	lines := make([]ProfileLine, 0, p.Len()+2)

	for _, f := range recognizedFields {
		v := f.lookup(p)
		if f.key == "callsign" {
			v = Callsign(p, opts.UppercaseCallsign)
		}
		if v == "" && !f.always {
			continue
		}
		lines = append(lines, ProfileLine{Label: f.label, Value: v})
	}

	if !opts.ShowExtraProfile {
		return lines
	}
	for _, e := range p.Entries {
		if isRecognized(e.Key) || e.Value == "" {
			continue
		}
		lines = append(lines, ProfileLine{Label: strings.ToUpper(e.Key), Value: e.Value})
	}
	return lines
}

// isRecognized reports whether key is a recognized field name or alias.
func isRecognized(key string) bool {
	for _, f := range recognizedFields {
		if key == f.key {
			return true
		}
		for _, a := range f.aliases {
			if key == a {
				return true
			}
		}
	}
	return false
}
