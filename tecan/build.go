package tecan

import (
	"fmt"

	"github.com/carbocation/pfx"

	"github.com/carbocation/growthcurve/plate"
)

// BuildPlate joins the OD600 rows with their hand-made annotations, keyed
// by well label, and assembles the run's plate. Every OD600 row must have
// exactly one annotation; the join is one-to-one.
func BuildPlate(od *OD600, labels []WellLabel) (*plate.Plate, error) {
	axis, err := plate.NewTimeAxis(od.Seconds)
	if err != nil {
		return nil, pfx.Err(err)
	}

	byLabel := make(map[string]WellLabel, len(labels))
	for _, l := range labels {
		if _, exists := byLabel[l.Label]; exists {
			return nil, pfx.Err(fmt.Errorf("duplicate annotation for well %s", l.Label))
		}
		byLabel[l.Label] = l
	}

	p := plate.NewPlate(axis)
	for _, row := range od.Rows {
		annotation, ok := byLabel[row.Label]
		if !ok {
			return nil, pfx.Err(fmt.Errorf("no annotation for well %s", row.Label))
		}

		w := plate.NewWell(row.Label, annotation.Strain, annotation.Dilution, row.Measurements)
		if err := p.AddWell(w); err != nil {
			return nil, pfx.Err(err)
		}
	}

	return p, nil
}
