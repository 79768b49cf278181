package coeffio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Table holds CSV contents as column-name -> cell-value series. Row
// order is preserved within a column; column order is not.
type Table map[string][]string

// MatchCriteria restricts which table rows apply. Each entry maps a
// column name to the cell values accepted for it.
type MatchCriteria map[string][]string

// MatchesAll reports whether the row satisfies every criterion: for
// each listed column, the row's cell equals at least one accepted
// value. An empty criteria set matches everything.
func (m MatchCriteria) MatchesAll(row map[string]string) bool {
	for col, accepted := range m {
		cell, ok := row[col]
		if !ok {
			return false
		}

		found := false
		for _, v := range accepted {
			if v == cell {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// MatchesAny reports whether the row satisfies at least one criterion.
// An empty criteria set matches everything.
func (m MatchCriteria) MatchesAny(row map[string]string) bool {
	if len(m) == 0 {
		return true
	}
	for col, accepted := range m {
		cell, ok := row[col]
		if !ok {
			continue
		}
		for _, v := range accepted {
			if v == cell {
				return true
			}
		}
	}
	return false
}

// ReadTable reads a CSV stream into a Table. The first row is the
// header; ragged data rows are tolerated, with missing cells stored as
// the empty string and extra cells dropped.
func ReadTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("coeffio: reading CSV: %w", err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := make(Table, len(header))
	for _, row := range records[1:] {
		for i, col := range header {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			table[col] = append(table[col], cell)
		}
	}
	return table, nil
}

// RowCount returns the number of rows in the table (the longest
// column; columns need not agree).
func (t Table) RowCount() int {
	n := 0
	for _, col := range t {
		if len(col) > n {
			n = len(col)
		}
	}
	return n
}

// Row returns one row as a column-name -> cell map. Nonexistent cells
// contain the empty string.
func (t Table) Row(ridx int) map[string]string {
	row := make(map[string]string, len(t))
	for name, col := range t {
		cell := ""
		if ridx >= 0 && ridx < len(col) {
			cell = col[ridx]
		}
		row[name] = cell
	}
	return row
}

// WriteTable writes the named columns of a table as CSV with CRLF line
// endings. Header names are quoted; cell values are written verbatim.
// Nonexistent cells are written empty.
func WriteTable(w io.Writer, colNames []string, data Table, wantHeader bool) error {
	if wantHeader {
		for i, name := range colNames {
			if i > 0 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, strconv.Quote(name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
	}

	rowCount := data.RowCount()
	for r := 0; r < rowCount; r++ {
		for i, name := range colNames {
			if i > 0 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			col := data[name]
			if r < len(col) {
				if _, err := io.WriteString(w, col[r]); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
	}
	return nil
}
