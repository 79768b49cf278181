package coeffio

import (
	"io"
	"strconv"

	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/lut"
)

// ReadLUT merges lookup-table entries from a CSV stream into a single
// LUT. Required columns are "row" plus the caller-named input and
// output fields; rows not listed in the file keep their existing
// values. Rows failing the match criteria are skipped.
func ReadLUT[In, Out core.Sample](r io.Reader, l *lut.StepLUT[In, Out], inField, outField string, criteria MatchCriteria) error {
	table, err := ReadTable(r)
	if err != nil {
		return err
	}

	rowCount := table.RowCount()
	for ridx := 0; ridx < rowCount; ridx++ {
		row := table.Row(ridx)
		if !criteria.MatchesAll(row) {
			continue
		}

		lutRow := parseCellInt(row["row"])
		inVal := int64ToSample[In](parseCell(row[inField]))
		outVal := int64ToSample[Out](parseCell(row[outField]))

		l.SetEntry(lutRow, inVal, outVal)
	}
	return nil
}

// ReadBankLUT merges lookup-table entries from a CSV stream into
// per-bank LUTs. Required columns are "bank" and "row" plus the
// caller-named fields. Bank indices found in bankRemap are renamed
// before use.
func ReadBankLUT[In, Out core.Sample](r io.Reader, l *lut.BankLUT[In, Out], inField, outField string, criteria MatchCriteria, bankRemap map[int]int) error {
	table, err := ReadTable(r)
	if err != nil {
		return err
	}

	rowCount := table.RowCount()
	for ridx := 0; ridx < rowCount; ridx++ {
		row := table.Row(ridx)
		if !criteria.MatchesAll(row) {
			continue
		}

		lutRow := parseCellInt(row["row"])
		bankIdx := parseCellInt(row["bank"])

		if mapped, ok := bankRemap[bankIdx]; ok {
			bankIdx = mapped
		}

		inVal := int64ToSample[In](parseCell(row[inField]))
		outVal := int64ToSample[Out](parseCell(row[outField]))

		l.SetOneEntry(bankIdx, lutRow, inVal, outVal)
	}
	return nil
}

// WriteLUT writes a single LUT's active rows as CSV under the
// caller-named input and output fields. Extra constant-valued columns,
// if any, are written before the tuple columns.
func WriteLUT[In, Out core.Sample](w io.Writer, l *lut.StepLUT[In, Out], inField, outField string, wantHeader bool, extraColOrder []string, extraColValues map[string]string) error {
	colNames := make([]string, 0, len(extraColOrder)+3)
	colNames = append(colNames, extraColOrder...)
	colNames = append(colNames, "row", inField, outField)

	series := make(Table)

	for ridx := 0; ridx < l.ActiveRows(); ridx++ {
		inVal, outVal := l.Entry(ridx)

		series["row"] = append(series["row"], strconv.Itoa(ridx))
		series[inField] = append(series[inField],
			strconv.FormatInt(sampleToInt64(inVal), 10))
		series[outField] = append(series[outField],
			strconv.FormatInt(sampleToInt64(outVal), 10))

		for _, name := range extraColOrder {
			series[name] = append(series[name], extraColValues[name])
		}
	}

	return WriteTable(w, colNames, series, wantHeader)
}

// WriteBankLUT writes per-bank LUT active banks and rows as CSV.
// Extra constant-valued columns, if any, are written before the tuple
// columns.
func WriteBankLUT[In, Out core.Sample](w io.Writer, l *lut.BankLUT[In, Out], inField, outField string, wantHeader bool, extraColOrder []string, extraColValues map[string]string) error {
	colNames := make([]string, 0, len(extraColOrder)+4)
	colNames = append(colNames, extraColOrder...)
	colNames = append(colNames, "bank", "row", inField, outField)

	series := make(Table)

	for bidx := 0; bidx < l.ActiveBanks(); bidx++ {
		for ridx := 0; ridx < l.ActiveRows(); ridx++ {
			inVal, outVal := l.OneEntry(bidx, ridx)

			series["bank"] = append(series["bank"], strconv.Itoa(bidx))
			series["row"] = append(series["row"], strconv.Itoa(ridx))
			series[inField] = append(series[inField],
				strconv.FormatInt(sampleToInt64(inVal), 10))
			series[outField] = append(series[outField],
				strconv.FormatInt(sampleToInt64(outVal), 10))

			for _, name := range extraColOrder {
				series[name] = append(series[name], extraColValues[name])
			}
		}
	}

	return WriteTable(w, colNames, series, wantHeader)
}
