package loader

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/hamlog/contactlog/internal/config"
	"github.com/hamlog/contactlog/internal/failure"
	"github.com/hamlog/contactlog/internal/model"
)

// parseContacts parses UTF-8 CSV text. The first record is the schema; every
// later record is aligned to it positionally according to opts.RowPolicy.
// Row numbers are the line a record starts on. Blank lines are not records:
// they are skipped and never reach the row policy.
func parseContacts(data []byte, path string, opts Options) (*model.ContactLog, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = opts.Comma
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, failure.New(failure.SourceUnreadable, path, eris.New("loader: csv has no header row"))
	}
	if err != nil {
		return nil, failure.New(failure.SourceUnreadable, path, eris.Wrap(err, "loader: read csv header"))
	}

	schema := make(model.ColumnSchema, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		schema[i] = strings.TrimSpace(h)
	}

	contacts := &model.ContactLog{Schema: schema}
	want := len(schema)

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, failure.New(failure.SourceUnreadable, path, eris.Wrap(err, "loader: read csv row"))
		}
		row, _ := reader.FieldPos(0)

		if len(rec) != want {
			padded, ok := reshape(rec, want, opts.RowPolicy)
			if !ok {
				rej := model.RejectedRow{
					Row:      row,
					Fields:   len(rec),
					Expected: want,
					Reason:   shapeReason(len(rec), want),
				}
				if opts.RowPolicy == config.RowPolicyFail {
					return nil, failure.NewRow(path, row,
						eris.Errorf("loader: %s: row has %d fields, header has %d", rej.Reason, rej.Fields, rej.Expected))
				}
				contacts.Rejected = append(contacts.Rejected, rej)
				continue
			}
			rec = padded
		}

		values := make([]string, want)
		for i, v := range rec {
			if opts.TrimSpace {
				v = strings.TrimSpace(v)
			}
			values[i] = v
		}
		contacts.Records = append(contacts.Records, model.ContactRecord{Row: row, Values: values})
	}

	return contacts, nil
}

// reshape applies the row policy to a record whose length differs from the
// header. Only the pad policy accepts a row, and only when it is short.
func reshape(rec []string, want int, policy string) ([]string, bool) {
	if policy != config.RowPolicyPad || len(rec) > want {
		return nil, false
	}
	out := make([]string, want)
	copy(out, rec)
	return out, true
}

func shapeReason(got, want int) string {
	if got < want {
		return "short row"
	}
	return "long row"
}
