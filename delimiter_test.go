package growthcurve

import (
	"strings"
	"testing"
)

func TestDetermineDelimiter(t *testing.T) {
	for _, v := range []struct {
		name string
		in   string
		want rune
	}{
		{"comma", "A1,K12,0.01\nA2,BW25113,0.1\nA3,blank,1\n", ','},
		{"tab", "A1\tK12\t0.01\nA2\tBW25113\t0.1\nA3\tblank\t1\n", '\t'},
	} {
		if got := DetermineDelimiter(strings.NewReader(v.in)); got != v.want {
			t.Errorf("%s: detected %q, expected %q", v.name, got, v.want)
		}
	}
}
