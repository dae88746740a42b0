// Package growthcurve provides shared file helpers for the growth curve
// analysis tools. The analysis itself lives in the plate, doubling, and
// tecan packages.
package growthcurve

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune delimiting the
// values in the reader. Well annotation files are assembled by hand and
// show up comma-, tab-, and occasionally semicolon-delimited, so the
// parsers sniff rather than assume. Falls back to tab, the TECAN export
// delimiter.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}
