package tecan

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/carbocation/growthcurve"
)

// WellLabel is one row of the hand-made well annotation file: the grid
// label, the strain in that well, and its dilution.
type WellLabel struct {
	Label    string  `csv:"label"`
	Strain   string  `csv:"strain"`
	Dilution float64 `csv:"dilution"`
}

// ReadLabels parses the well annotation file. These files have no header
// and are assembled by hand, so the delimiter is sniffed rather than
// assumed.
func ReadLabels(r io.Reader) ([]WellLabel, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := growthcurve.DetermineDelimiter(bytes.NewReader(raw))

	// Tell gocsv to use the sniffed delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = delim
		cr.LazyQuotes = true
		return cr
	})

	records := []WellLabel{}
	if err := gocsv.UnmarshalWithoutHeaders(bytes.NewReader(raw), &records); err != nil {
		return nil, pfx.Err(err)
	}

	return records, nil
}
