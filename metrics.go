package main

import (
	"fmt"
	"io"

	"github.com/cs-au-dk/intervals/algebra/interval"

	"github.com/fatih/color"
)

type metrics struct {
	members, regions       int
	degenerate, unbounded  int
	intersecting, touching int
	covered                float64
}

func collectMetrics(m *interval.Multi) (res metrics) {
	members := m.Members()
	res.members = len(members)

	for i, a := range members {
		if a.IsDegenerate() {
			res.degenerate++
		}
		if a.Lower().IsInfinite() || a.Upper().IsInfinite() {
			res.unbounded++
		}
		for _, b := range members[i+1:] {
			switch {
			case a.Intersects(b):
				res.intersecting++
			case a.Touches(b):
				res.touching++
			}
		}
	}

	normalized := m.Clone().Normalize().Members()
	res.regions = len(normalized)
	for _, iv := range normalized {
		res.covered += iv.Length()
	}
	return
}

// gatherMetrics reports structural statistics about the evaluated region.
func gatherMetrics(w io.Writer, m *interval.Multi) {
	if !opts.Metrics() {
		return
	}
	res := collectMetrics(m)

	msg := "================ Results =====================\n\n"
	msg += "Members: " + color.GreenString(fmt.Sprint(res.members)) + "\n"
	msg += "Disjoint regions: " + color.GreenString(fmt.Sprint(res.regions)) + "\n"
	msg += "Degenerate members: " + fmt.Sprint(res.degenerate) + "\n"
	msg += "Unbounded members: " + fmt.Sprint(res.unbounded) + "\n"
	msg += "Intersecting pairs: " + fmt.Sprint(res.intersecting) + "\n"
	msg += "Touching pairs: " + fmt.Sprint(res.touching) + "\n"
	msg += "Covered length: " + color.BlueString(fmt.Sprint(res.covered)) + "\n"
	msg += "================ Results ====================="
	fmt.Fprintln(w, msg)
}
