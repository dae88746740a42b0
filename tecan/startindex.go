package tecan

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/carbocation/pfx"

	"github.com/carbocation/growthcurve/plate"
)

// ReadStartIndexes applies persisted artifact start indexes to the plate's
// wells. The file is tab delimited, one "label index" row per well, as
// written by WriteStartIndexes (and by cmd/startreview). Rows naming wells
// not on the plate are an error: they usually mean the index file belongs
// to a different run.
func ReadStartIndexes(r io.Reader, p *plate.Plate) error {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	for {
		line, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return pfx.Err(err)
		}

		if len(line) < 2 {
			return pfx.Err(fmt.Errorf("start index row has %d fields, expected label and index", len(line)))
		}

		index, err := strconv.Atoi(line[1])
		if err != nil {
			return pfx.Err(fmt.Errorf("well %s: %w", line[0], err))
		}

		w, ok := p.Well(line[0])
		if !ok {
			return pfx.Err(fmt.Errorf("start index file names well %s, which is not on this plate", line[0]))
		}

		// An exited review run persists the unresolved sentinel for the
		// wells it never reached. Leave those unresolved so FindBase can
		// report them by name.
		if index == plate.UnresolvedStartIndex {
			continue
		}

		if err := w.SetStartIndex(index); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}

// WriteStartIndexes persists each well's artifact start index as tab
// delimited "label index" rows, in plate order.
func WriteStartIndexes(w io.Writer, p *plate.Plate) error {
	for _, well := range p.Wells() {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", well.Label, well.StartIndex()); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}
