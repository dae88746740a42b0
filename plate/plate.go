package plate

import "fmt"

// Plate is one run's worth of wells plus their shared time axis. Wells
// keep the order they appear in the instrument export; lookup by label is
// constant time. The set of wells is fixed for the duration of a run.
type Plate struct {
	Times TimeAxis

	wells   []*Well
	byLabel map[string]*Well
}

// NewPlate creates an empty plate over the given time axis.
func NewPlate(times TimeAxis) *Plate {
	return &Plate{
		Times:   times,
		byLabel: make(map[string]*Well),
	}
}

// AddWell appends a well to the plate. The well's measurement count must
// match the time axis, and its label must be new to the plate.
func (p *Plate) AddWell(w *Well) error {
	if w.Len() != p.Times.Len() {
		return InputShapeError{Label: w.Label, Want: p.Times.Len(), Got: w.Len()}
	}
	if _, exists := p.byLabel[w.Label]; exists {
		return fmt.Errorf("duplicate well label %s", w.Label)
	}

	p.wells = append(p.wells, w)
	p.byLabel[w.Label] = w

	return nil
}

// Well returns the well with the given label, if present.
func (p *Plate) Well(label string) (*Well, bool) {
	w, ok := p.byLabel[label]

	return w, ok
}

// Wells returns all wells in instrument order.
func (p *Plate) Wells() []*Well {
	return p.wells
}

// Len returns the number of wells on the plate.
func (p *Plate) Len() int {
	return len(p.wells)
}
