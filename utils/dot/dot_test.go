package dot

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteDot(t *testing.T) {
	a := &DotNode{ID: "a", Attrs: DotAttrs{"label": "[0, 1]"}}
	b := &DotNode{ID: "b", Attrs: DotAttrs{"label": "(1, 2]", "fillcolor": "white"}}
	cluster := NewDotCluster("0")
	cluster.Nodes = append(cluster.Nodes, a, b)

	g := &DotGraph{
		Title:    "example",
		Clusters: []*DotCluster{cluster},
		Edges:    []*DotEdge{{From: a, To: b, Attrs: DotAttrs{"style": "dashed"}}},
	}

	var buf bytes.Buffer
	if err := g.Export(&buf, "dot"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, expected := range []string{
		`label="example";`,
		`rankdir="LR";`,
		`subgraph "cluster_0" {`,
		`"b" [ fillcolor="white"; label="(1, 2]"; ]`,
		`"a" -- "b" [ style="dashed"; ]`,
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected %q in\n%s", expected, out)
		}
	}
	if g.countNodes() != 2 {
		t.Errorf("Expected 2 nodes, got %d", g.countNodes())
	}
}

func TestAttrsOrder(t *testing.T) {
	attrs := DotAttrs{"z": "1", "a": "2", "m": "3"}
	if s := attrs.String(); s != `a="2"; m="3"; z="1";` {
		t.Errorf("Unexpected attribute rendering %s", s)
	}
}
