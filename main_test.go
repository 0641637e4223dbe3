package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/cs-au-dk/intervals/algebra/interval"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sebdah/goldie/v2"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	opts.SetNoColorize(true)
	os.Exit(m.Run())
}

func evaluate(t *testing.T, args ...string) *interval.Multi {
	pl, err := newPipeline(args)
	if err != nil {
		t.Fatalf("Parsing %v failed: %v", args, err)
	}
	return pl.evaluate()
}

func TestPipeline(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"[0, 10]", "-", "[3, 5]"}, "{[0, 3), (5, 10]}"},
		{[]string{"[0, 5]", "|", "[5, 10]", "|", "(20, 30)"}, "{[0, 10], (20, 30)}"},
		{[]string{"[0, 5]", "+", "[3, 8]", "norm"}, "{[0, 8]}"},
		{[]string{"[0, 10]", "ext"}, "{[-∞, 0), (10, +∞]}"},
		{[]string{"[0, 10]", "&", "(5, 20)"}, "{(5, 10]}"},
		{[]string{"[0, 5]", "soft", "[3, 9]"}, "{[0, 5], (5, 9]}"},
		{[]string{"[0, 5]", "hard", "[3, 9]"}, "{[0, 3), [3, 9]}"},
		{[]string{"[0, 1]", "-", "[-inf, inf]"}, "∅"},
	}

	for _, test := range tests {
		if res := evaluate(t, test.args...).String(); res != test.expected {
			t.Errorf("%v evaluated to %s, expected %s", test.args, res, test.expected)
		}
	}
}

func TestPipelineErrors(t *testing.T) {
	tests := []struct {
		args     []string
		expected error
	}{
		{nil, ErrExpression},
		{[]string{"[0, 1]", "?", "[2, 3]"}, ErrExpression},
		{[]string{"[0, 1]", "-"}, ErrExpression},
		{[]string{"[0, 1"}, interval.ErrSyntax},
		{[]string{"[0, 1]", "+", "bogus"}, interval.ErrSyntax},
		{[]string{"[2, 1]"}, interval.ErrReversed},
	}

	for _, test := range tests {
		if _, err := newPipeline(test.args); !errors.Is(err, test.expected) {
			t.Errorf("Parsing %v yielded %v, expected %v", test.args, err, test.expected)
		}
	}
}

func TestEvalOutput(t *testing.T) {
	var buf bytes.Buffer
	for _, args := range [][]string{
		{"[0, 10]", "-", "[3, 5]"},
		{"[0, 5]", "|", "[5, 10]", "|", "(20, 30)"},
		{"[0, 10]", "ext"},
		{"[0, 1]", "&", "[2, 3]"},
	} {
		if err := runTask(&buf, evaluate(t, args...)); err != nil {
			t.Fatal(err)
		}
	}
	goldie.New(t).Assert(t, t.Name(), buf.Bytes())
}

func overlapExample() *interval.Multi {
	return interval.NewMulti(
		interval.Must(interval.Closed(0, 5)),
		interval.Must(interval.Closed(3, 8)),
		interval.Must(interval.Open(8, 9)),
		interval.Must(interval.Degenerate(20)),
	)
}

func TestOverlapGraph(t *testing.T) {
	g := overlapGraph(overlapExample())

	if len(g.Clusters) != 2 {
		t.Fatalf("Expected 2 clusters, got %d", len(g.Clusters))
	}
	if n := len(g.Clusters[0].Nodes); n != 3 {
		t.Errorf("Expected 3 members in %s, got %d", g.Clusters[0].Attrs["label"], n)
	}
	if n := len(g.Clusters[1].Nodes); n != 1 {
		t.Errorf("Expected 1 member in %s, got %d", g.Clusters[1].Attrs["label"], n)
	}

	for i, region := range overlapExample().Normalize().Members() {
		if label := g.Clusters[i].Attrs["label"]; label != region.String() {
			t.Errorf("Cluster %d is labelled %s, expected %s", i, label, region)
		}
	}

	if len(g.Edges) != 2 {
		t.Fatalf("Expected 2 edges, got %d", len(g.Edges))
	}
	if e := g.Edges[0]; e.From.ID != "m0" || e.To.ID != "m1" || e.Attrs["label"] != "{[3, 5]}" {
		t.Errorf("Unexpected intersection edge %s -- %s [ %s ]", e.From, e.To, e.Attrs)
	}
	if e := g.Edges[1]; e.From.ID != "m1" || e.To.ID != "m2" || e.Attrs["style"] != "dashed" {
		t.Errorf("Unexpected touching edge %s -- %s [ %s ]", e.From, e.To, e.Attrs)
	}

	var buf bytes.Buffer
	if err := g.Export(&buf, "dot"); err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{
		"graph IntervalOverlap {",
		`subgraph "cluster_0" {`,
		`"m1" -- "m2" [ style="dashed"; ]`,
		`"m3" [ label="[20, 20]"; shape="point"; xlabel="[20, 20]"; ]`,
	} {
		if !strings.Contains(buf.String(), expected) {
			t.Errorf("Expected %q in\n%s", expected, buf.String())
		}
	}
}

func TestCollectMetrics(t *testing.T) {
	res := collectMetrics(overlapExample())
	expected := metrics{
		members:      4,
		regions:      2,
		degenerate:   1,
		intersecting: 1,
		touching:     1,
		covered:      9,
	}
	if res != expected {
		t.Errorf("Collected %+v, expected %+v", res, expected)
	}
}
