package tecan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/carbocation/growthcurve/doubling"
	"github.com/carbocation/growthcurve/plate"
)

func TestWriteDoublingReport(t *testing.T) {
	axis, err := plate.NewTimeAxis([]float64{0, 3600, 7200, 10800, 14400})
	if err != nil {
		t.Fatal(err)
	}

	p := plate.NewPlate(axis)
	for _, label := range []string{"A1", "A2"} {
		w := plate.NewWell(label, "K12", 0.01, []float64{1, 2, 4, 8, 16})
		if err := w.SetStartIndex(1); err != nil {
			t.Fatal(err)
		}
		if err := p.AddWell(w); err != nil {
			t.Fatal(err)
		}
	}

	results := doubling.NewResultSet()
	results.Add("A1", []float64{1, 1})
	results.Add("A2", []float64{2.5, 0})

	var buf bytes.Buffer
	if err := WriteDoublingReport(&buf, p, results, 3); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("report has %d lines, expected 5", len(lines))
	}

	if lines[0] != "OD600 Doubling Times" {
		t.Errorf("title line is %q", lines[0])
	}

	if want := "-\t-\t-\t-\tTimepoint:\t0\t1"; lines[1] != want {
		t.Errorf("timepoint line is %q, expected %q", lines[1], want)
	}

	if want := "Well\tStrain\tDilution\tFirst Timepoint After Artifact\tInterval (hrs):\t0 - 3\t1 - 4"; lines[2] != want {
		t.Errorf("interval line is %q, expected %q", lines[2], want)
	}

	if want := "A1\tK12\t0.01\t1\t\t1\t1"; lines[3] != want {
		t.Errorf("A1 line is %q, expected %q", lines[3], want)
	}
	if want := "A2\tK12\t0.01\t1\t\t2.5\t0"; lines[4] != want {
		t.Errorf("A2 line is %q, expected %q", lines[4], want)
	}
}

func TestWriteDoublingReportRequiresEveryWell(t *testing.T) {
	axis, err := plate.NewTimeAxis([]float64{0, 3600, 7200})
	if err != nil {
		t.Fatal(err)
	}

	p := plate.NewPlate(axis)
	w := plate.NewWell("A1", "K12", 0.01, []float64{1, 2, 4})
	if err := w.SetStartIndex(0); err != nil {
		t.Fatal(err)
	}
	if err := p.AddWell(w); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteDoublingReport(&buf, p, doubling.NewResultSet(), 2); err == nil {
		t.Error("expected an error for a well without estimates")
	}
}
