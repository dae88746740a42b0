package tecan

import (
	"strings"
	"testing"
)

func TestReadLabels(t *testing.T) {
	// The annotation files are hand made, so both the instrument's tab
	// delimiter and a comma-delimited spreadsheet export must parse.
	for _, v := range []struct {
		name string
		in   string
	}{
		{"tab delimited", "A1\tK12\t0.01\nA2\tBW25113\t0.1\nA3\tblank\t1\n"},
		{"comma delimited", "A1,K12,0.01\nA2,BW25113,0.1\nA3,blank,1\n"},
	} {
		labels, err := ReadLabels(strings.NewReader(v.in))
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}

		if len(labels) != 3 {
			t.Fatalf("%s: got %d rows, expected 3", v.name, len(labels))
		}
		if labels[1].Label != "A2" || labels[1].Strain != "BW25113" || labels[1].Dilution != 0.1 {
			t.Errorf("%s: row 1 is %+v, expected A2/BW25113/0.1", v.name, labels[1])
		}
	}
}

func TestReadLabelsRejectsNonNumericDilution(t *testing.T) {
	if _, err := ReadLabels(strings.NewReader("A1\tK12\tten\n")); err == nil {
		t.Error("expected an error for a non-numeric dilution")
	}
}
