package coeffio

import (
	"io"
	"regexp"
	"sort"
	"strconv"

	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/filter/fir"
)

// firBankColumn matches FIR coefficient column names of the form
// "bank N".
var firBankColumn = regexp.MustCompile(`^bank\s+(\d+)$`)

// ReadFIRCoeffs loads FIR coefficients from a CSV stream into a filter
// bank. Each column named "bank N" holds bank N's coefficient samples
// in row order. The fractional bit depth is not persisted in the file;
// the caller supplies it. Rows failing the match criteria are skipped,
// so each bank's coefficient count is the number of matching rows —
// zero matching rows leave a blanked filter with fracBits applied.
// Bank indices found in bankRemap are renamed before use.
func ReadFIRCoeffs[S core.Sample, I core.Index](r io.Reader, bank *fir.Bank[S, I], fracBits uint8, criteria MatchCriteria, bankRemap map[int]int) error {
	table, err := ReadTable(r)
	if err != nil {
		return err
	}

	// First pass: find bank columns and apply the remap.
	bankNames := make(map[int]string)
	for colName := range table {
		m := firBankColumn.FindStringSubmatch(colName)
		if m == nil {
			continue
		}

		bankIdx, _ := strconv.Atoi(m[1])
		if mapped, ok := bankRemap[bankIdx]; ok {
			bankIdx = mapped
		}
		bankNames[bankIdx] = colName
	}

	bankIdxs := make([]int, 0, len(bankNames))
	for idx := range bankNames {
		bankIdxs = append(bankIdxs, idx)
	}
	sort.Ints(bankIdxs)

	// Second pass: build each bank's filter from matching rows.
	rowCount := table.RowCount()
	for _, bankIdx := range bankIdxs {
		colName := bankNames[bankIdx]

		bank.BlankOneFilter(bankIdx)
		coeffCount := I(0)

		for ridx := 0; ridx < rowCount; ridx++ {
			row := table.Row(ridx)
			if !criteria.MatchesAll(row) {
				continue
			}

			bank.SetOneCoefficient(bankIdx, coeffCount,
				int64ToSample[S](parseCell(row[colName])))
			coeffCount++
		}

		bank.SetOneGeometry(bankIdx, fracBits, coeffCount)
	}
	return nil
}

// WriteFIRCoeffs writes a filter bank's active banks as CSV, one
// "bank N" column per bank. The fractional bit depth is not written;
// the caller must track it. Extra constant-valued columns, if any, are
// written before the coefficient columns.
func WriteFIRCoeffs[S core.Sample, I core.Index](w io.Writer, bank *fir.Bank[S, I], wantHeader bool, extraColOrder []string, extraColValues map[string]string) error {
	colNames := make([]string, 0, len(extraColOrder)+bank.ActiveBanks())
	colNames = append(colNames, extraColOrder...)

	series := make(Table)
	maxCoeffCount := I(0)

	for bidx := 0; bidx < bank.ActiveBanks(); bidx++ {
		colName := "bank " + strconv.Itoa(bidx)
		colNames = append(colNames, colName)

		_, coeffCount := bank.OneGeometry(bidx)
		if coeffCount > maxCoeffCount {
			maxCoeffCount = coeffCount
		}

		col := make([]string, 0, coeffCount)
		for sidx := I(0); sidx < coeffCount; sidx++ {
			col = append(col,
				strconv.FormatInt(sampleToInt64(bank.OneCoefficient(bidx, sidx)), 10))
		}
		series[colName] = col
	}

	for _, name := range extraColOrder {
		val := extraColValues[name]
		col := make([]string, 0, maxCoeffCount)
		for sidx := I(0); sidx < maxCoeffCount; sidx++ {
			col = append(col, val)
		}
		series[name] = col
	}

	return WriteTable(w, colNames, series, wantHeader)
}
