package model

// ColumnSchema is the ordered list of header labels taken from the first row
// of the contact log. Labels are kept exactly as read; duplicates are allowed.
type ColumnSchema []string

// Len returns the number of columns.
func (s ColumnSchema) Len() int { return len(s) }

// Index returns the position of the first column with the given label, or -1.
func (s ColumnSchema) Index(label string) int {
	for i, l := range s {
		if l == label {
			return i
		}
	}
	return -1
}

// ContactRecord is one QSO row. Values are positionally aligned with the
// ColumnSchema the record was loaded with.
type ContactRecord struct {
	// Row is the 1-based line the record starts on in the source file.
	Row    int      `json:"row"`
	Values []string `json:"values"`
}

// Get returns the value under the first column with the given label.
// ok is false when the label is not part of the schema.
func (r ContactRecord) Get(schema ColumnSchema, label string) (string, bool) {
	i := schema.Index(label)
	if i < 0 || i >= len(r.Values) {
		return "", false
	}
	return r.Values[i], true
}

// RejectedRow records a data row that was left out under the active row policy.
type RejectedRow struct {
	Row      int    `json:"row"`
	Fields   int    `json:"fields"`
	Expected int    `json:"expected"`
	Reason   string `json:"reason"`
}

// ContactLog is the loaded contact log: schema, records in file order and
// any rows rejected while loading.
type ContactLog struct {
	Schema   ColumnSchema    `json:"schema"`
	Records  []ContactRecord `json:"records"`
	Rejected []RejectedRow   `json:"rejected,omitempty"`
}
