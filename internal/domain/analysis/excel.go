package analysis

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxMagic is the ZIP local-file-header signature every XLSX starts with.
var xlsxMagic = []byte{'P', 'K', 0x03, 0x04}

// IsWorkbook reports whether the payload looks like an XLSX workbook rather
// than CSV text.
func IsWorkbook(data []byte) bool {
	return bytes.HasPrefix(data, xlsxMagic)
}

// ParseWorkbook converts the first sheet of an XLSX workbook into the same
// Table shape the CSV parser produces: first non-empty row is the header,
// cells are trimmed, ragged rows tolerated, fully blank rows skipped. A sheet
// named "Transactions" is preferred when present.
func ParseWorkbook(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("malformed workbook: %w", err)
	}
	defer f.Close()

	sheet := transactionSheet(f)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	tb := &Table{}
	for _, cells := range rows {
		trimmed := make([]string, len(cells))
		blank := true
		for i, c := range cells {
			trimmed[i] = strings.TrimSpace(c)
			if trimmed[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		if tb.Headers == nil {
			tb.Headers = trimmed
			continue
		}
		tb.Rows = append(tb.Rows, rowFromRecord(tb.Headers, trimmed))
	}
	return tb, nil
}

func transactionSheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	for _, name := range sheets {
		if strings.EqualFold(name, "transactions") {
			return name
		}
	}
	if len(sheets) > 0 {
		return sheets[0]
	}
	return ""
}
