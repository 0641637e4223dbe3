package interval

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestRenderIntervals(t *testing.T) {
	ivs := []Interval{
		cc(0, 10),
		oo(2, 6),
		pt(3),
		co(1, 4),
		oc(0, 2),
		Must(InfClosed(3)),
		Must(ClosedInf(45)),
		Complete(),
		cc(0.4, 2.6),
	}

	var buf bytes.Buffer
	for _, iv := range ivs {
		if err := iv.Render(&buf); err != nil {
			t.Fatal(err)
		}
	}
	goldie.New(t).Assert(t, t.Name(), buf.Bytes())
}

func TestRenderMulti(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMulti(cc(0, 3), oo(5, 8)).Render(&buf); err != nil {
		t.Fatal(err)
	}
	goldie.New(t).Assert(t, t.Name(), buf.Bytes())
}
