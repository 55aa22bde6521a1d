// Package sheet turns externally fetched tabular price-sheet text (three
// related tables: rate overrides, stone catalog, slabs) into the Settings
// value the pricing core consumes.
package sheet

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// Row is one parsed table row, keyed by lower-cased trimmed column header.
type Row map[string]string

// Str returns the first non-empty value among the given header keys,
// trimmed. Multiple keys cover header naming drift between sheet revisions.
func (r Row) Str(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v
		}
	}
	return ""
}

// Float parses the first non-empty value among the given keys. The ok result
// is false when no value is present or it does not parse as a number.
func (r Row) Float(keys ...string) (float64, bool) {
	v := r.Str(keys...)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FloatOrZero is Float with the slab-table default: unparseable or missing
// numerics become 0 rather than aborting the row.
func (r Row) FloatOrZero(keys ...string) float64 {
	f, _ := r.Float(keys...)
	return f
}

// ParseTable parses CSV text into rows keyed by header. Parsing is
// best-effort and total: quoted fields may contain separators, newlines and
// doubled quotes; blank rows are skipped; short rows simply lack the missing
// columns. The first non-blank record is the header.
func ParseTable(text string) []Row {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var header []string
	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed record: tolerate and move on.
			continue
		}
		if isBlank(record) {
			continue
		}
		if header == nil {
			header = make([]string, len(record))
			for i, h := range record {
				header[i] = strings.ToLower(strings.TrimSpace(h))
			}
			continue
		}
		row := make(Row, len(header))
		for i, h := range header {
			if h == "" || i >= len(record) {
				continue
			}
			row[h] = record[i]
		}
		rows = append(rows, row)
	}
	return rows
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
