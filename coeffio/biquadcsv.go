package coeffio

import (
	"io"
	"strconv"

	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/filter/biquad"
)

// ReadBiquadCoeffs loads biquad coefficients from a CSV stream into a
// filter bank. Required columns are bank, stage, num0..num2, and
// den0..den2; other columns are ignored. den0 must be a positive power
// of two; its exponent is recovered by shifting. Rows that fail the
// match criteria are skipped, and bank indices found in bankRemap are
// renamed before use. Nil criteria and remap apply every row as-is.
func ReadBiquadCoeffs[S core.Sample](r io.Reader, bank *biquad.Bank[S], criteria MatchCriteria, bankRemap map[int]int) error {
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

		bankNum := parseCellInt(row["bank"])
		stageNum := parseCellInt(row["stage"])

		if mapped, ok := bankRemap[bankNum]; ok {
			bankNum = mapped
		}

		num0 := int64ToSample[S](parseCell(row["num0"]))
		num1 := int64ToSample[S](parseCell(row["num1"]))
		num2 := int64ToSample[S](parseCell(row["num2"]))

		den0 := int64ToSample[S](parseCell(row["den0"]))
		den1 := int64ToSample[S](parseCell(row["den1"]))
		den2 := int64ToSample[S](parseCell(row["den2"]))

		// Recover the shift exponent; this tolerates a bogus den0.
		var den0Bits uint8
		for den0 > 1 {
			den0 >>= 1
			den0Bits++
		}

		bank.SetCoefficients(stageNum, bankNum, biquad.Coefficients[S]{
			A0Bits: den0Bits,
			A1:     den1,
			A2:     den2,
			B0:     num0,
			B1:     num1,
			B2:     num2,
		})
	}
	return nil
}

// WriteBiquadCoeffs writes a filter bank's active banks and stages as
// CSV. Extra constant-valued columns, if any, are written before the
// coefficient columns in the given order.
func WriteBiquadCoeffs[S core.Sample](w io.Writer, bank *biquad.Bank[S], wantHeader bool, extraColOrder []string, extraColValues map[string]string) error {
	chanCount := bank.ActiveChans()
	bankCount := bank.ActiveBanks()
	stageCount := bank.ActiveStages()

	colNames := make([]string, 0, len(extraColOrder)+8)
	colNames = append(colNames, extraColOrder...)
	colNames = append(colNames,
		"bank", "stage", "num0", "num1", "num2", "den0", "den1", "den2")

	series := make(Table)

	if chanCount > 0 {
		for bidx := 0; bidx < bankCount; bidx++ {
			for sidx := 0; sidx < stageCount; sidx++ {
				coeffs := bank.StageCoefficients(sidx, bidx)

				var den0 S = 1
				den0 <<= coeffs.A0Bits

				series["bank"] = append(series["bank"], strconv.Itoa(bidx))
				series["stage"] = append(series["stage"], strconv.Itoa(sidx))

				series["num0"] = append(series["num0"],
					strconv.FormatInt(sampleToInt64(coeffs.B0), 10))
				series["num1"] = append(series["num1"],
					strconv.FormatInt(sampleToInt64(coeffs.B1), 10))
				series["num2"] = append(series["num2"],
					strconv.FormatInt(sampleToInt64(coeffs.B2), 10))

				series["den0"] = append(series["den0"],
					strconv.FormatInt(sampleToInt64(den0), 10))
				series["den1"] = append(series["den1"],
					strconv.FormatInt(sampleToInt64(coeffs.A1), 10))
				series["den2"] = append(series["den2"],
					strconv.FormatInt(sampleToInt64(coeffs.A2), 10))

				for _, name := range extraColOrder {
					series[name] = append(series[name], extraColValues[name])
				}
			}
		}
	}

	return WriteTable(w, colNames, series, wantHeader)
}
