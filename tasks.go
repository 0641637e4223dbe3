package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/cs-au-dk/intervals/algebra/interval"
	"github.com/cs-au-dk/intervals/utils/dot"
	"github.com/cs-au-dk/intervals/utils/graph"
)

// runTask performs the task selected on the command line on the evaluated region.
func runTask(w io.Writer, m *interval.Multi) error {
	switch {
	// render : draws every member on an integer number line.
	case task.IsRender():
		return m.Render(w)
	// normalize : merges intersecting and touching members, ordered by lower bound.
	case task.IsNormalize():
		_, err := fmt.Fprintln(w, m.Clone().Normalize())
		return err
	// overlap-graph : exports the graph of intersecting and touching members.
	case task.IsOverlapGraph():
		if opts.Output() == "" {
			return overlapGraph(m).Export(w, opts.OutputFormat())
		}
		f, err := os.Create(opts.Output())
		if err != nil {
			return err
		}
		if err := overlapGraph(m).Export(f, opts.OutputFormat()); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	_, err := fmt.Fprintln(w, m)
	return err
}

// overlapGraph connects every pair of members that intersect (solid edges) or
// touch (dashed edges). Members are clustered by connected component, which
// are the members merged into one region by normalization.
func overlapGraph(m *interval.Multi) *dot.DotGraph {
	g := &dot.DotGraph{
		Title:   m.String(),
		Options: map[string]string{"rankdir": "LR"},
	}

	members := m.Members()
	nodes := make([]*dot.DotNode, len(members))
	for i, iv := range members {
		attrs := dot.DotAttrs{"label": iv.String()}
		if iv.IsDegenerate() {
			attrs["shape"] = "point"
			attrs["xlabel"] = iv.String()
		}
		nodes[i] = &dot.DotNode{ID: "m" + strconv.Itoa(i), Attrs: attrs}
	}

	overlaps := graph.Symmetric(len(members), func(i, j int) bool {
		return members[i].Intersects(members[j]) || members[i].Touches(members[j])
	})
	starts := make([]int, len(members))
	for i := range starts {
		starts[i] = i
	}
	for ci, comp := range overlaps.SCC(starts).Components {
		sort.Ints(comp)
		region := interval.NewMulti()
		cluster := dot.NewDotCluster(strconv.Itoa(ci))
		for _, i := range comp {
			region.AddOverlapping(members[i])
			cluster.Nodes = append(cluster.Nodes, nodes[i])
		}
		hull, _ := region.Hull()
		cluster.Attrs["label"] = hull.String()
		g.Clusters = append(g.Clusters, cluster)
	}

	for i, a := range members {
		for j := i + 1; j < len(members); j++ {
			b := members[j]
			switch {
			case a.Intersects(b):
				g.Edges = append(g.Edges, &dot.DotEdge{
					From:  nodes[i],
					To:    nodes[j],
					Attrs: dot.DotAttrs{"label": a.Intersect(b).String()},
				})
			case a.Touches(b):
				g.Edges = append(g.Edges, &dot.DotEdge{
					From:  nodes[i],
					To:    nodes[j],
					Attrs: dot.DotAttrs{"style": "dashed"},
				})
			}
		}
	}
	return g
}
