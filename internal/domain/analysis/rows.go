package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// RawRow maps a header name to the corresponding trimmed cell value for one
// data line. Rows are ephemeral: produced by the parser, consumed immediately
// by the normalizer.
type RawRow map[string]string

// Table is the parsed tabular form of a statement: the header strings in
// original order plus one RawRow per surviving data line.
type Table struct {
	Headers []string
	Rows    []RawRow
}

// ParseTable parses raw CSV text into a Table. The first record is the
// header; blank lines are skipped; rows with a different cell count than the
// header are tolerated (missing cells become empty values, extra cells are
// ignored). Headers and cells are whitespace-trimmed.
//
// Structural CSV errors (e.g. a bare quote inside a quoted field) abort the
// whole batch; that is the only failure mode. Empty input yields an empty
// Table.
func ParseTable(text string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}

	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.TrimSpace(h)
	}

	tb := &Table{Headers: headers, Rows: make([]RawRow, 0, 64)}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed CSV: %w", err)
		}
		tb.Rows = append(tb.Rows, rowFromRecord(headers, record))
	}
	return tb, nil
}

// rowFromRecord zips a record against the header list. When the same header
// name appears twice the later cell wins, matching how column-keyed parsers
// behave.
func rowFromRecord(headers, record []string) RawRow {
	row := make(RawRow, len(headers))
	for i, h := range headers {
		if i < len(record) {
			row[h] = strings.TrimSpace(record[i])
		} else {
			row[h] = ""
		}
	}
	return row
}
