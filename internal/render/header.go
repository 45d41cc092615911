package render

import (
	"strings"

	"github.com/hamlog/contactlog/internal/model"
)

// HeaderLabels returns the table header text for schema, one per column in
// schema order.
func HeaderLabels(schema model.ColumnSchema, prettify bool) []string {
	labels := make([]string, schema.Len())
	for i, h := range schema {
		if prettify {
			h = PrettifyHeader(h)
		}
		labels[i] = h
	}
	return labels
}

// PrettifyHeader inserts a single space before the first upper-case Latin
// letter of a label like "日期DATE". Labels that already contain spaces only
// have their whitespace collapsed.
func PrettifyHeader(h string) string {
	h = strings.TrimSpace(h)
	if strings.Contains(h, " ") {
		return strings.Join(strings.Fields(h), " ")
	}
	pos := strings.IndexFunc(h, func(r rune) bool { return r >= 'A' && r <= 'Z' })
	if pos <= 0 {
		return h
	}
	return h[:pos] + " " + h[pos:]
}
