package tecan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/carbocation/growthcurve/plate"
)

func testPlate(t *testing.T) *plate.Plate {
	t.Helper()

	axis, err := plate.NewTimeAxis([]float64{0, 300, 600, 900})
	if err != nil {
		t.Fatal(err)
	}

	p := plate.NewPlate(axis)
	for _, label := range []string{"A1", "A2", "A3"} {
		if err := p.AddWell(plate.NewWell(label, "K12", 0.01, []float64{1, 2, 3, 4})); err != nil {
			t.Fatal(err)
		}
	}

	return p
}

func TestReadStartIndexes(t *testing.T) {
	p := testPlate(t)

	in := "A1\t2\nA2\t0\nA3\t-1\n"
	if err := ReadStartIndexes(strings.NewReader(in), p); err != nil {
		t.Fatal(err)
	}

	a1, _ := p.Well("A1")
	if a1.StartIndex() != 2 {
		t.Errorf("A1 start index is %d, expected 2", a1.StartIndex())
	}

	a2, _ := p.Well("A2")
	if a2.StartIndex() != 0 {
		t.Errorf("A2 start index is %d, expected 0", a2.StartIndex())
	}

	// -1 marks a well the reviewer never reached; it stays unresolved.
	a3, _ := p.Well("A3")
	if a3.StartResolved() {
		t.Error("A3 resolved from the unresolved sentinel")
	}
}

func TestReadStartIndexesRejectsUnknownWell(t *testing.T) {
	p := testPlate(t)

	if err := ReadStartIndexes(strings.NewReader("H12\t3\n"), p); err == nil {
		t.Error("expected an error for a well not on the plate")
	}
}

func TestReadStartIndexesRejectsOutOfRange(t *testing.T) {
	p := testPlate(t)

	if err := ReadStartIndexes(strings.NewReader("A1\t99\n"), p); err == nil {
		t.Error("expected an error for an out-of-range index")
	}
}

func TestStartIndexRoundTrip(t *testing.T) {
	p := testPlate(t)
	for i, w := range p.Wells() {
		if err := w.SetStartIndex(i); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := WriteStartIndexes(&buf, p); err != nil {
		t.Fatal(err)
	}

	p2 := testPlate(t)
	if err := ReadStartIndexes(&buf, p2); err != nil {
		t.Fatal(err)
	}

	for i, w := range p2.Wells() {
		if w.StartIndex() != i {
			t.Errorf("well %s start index is %d, expected %d", w.Label, w.StartIndex(), i)
		}
	}
}
