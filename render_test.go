package parti

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFprintSmallTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parti")
	defer teardown()

	tree, err := Build(ints(1, 5), 2)
	if err != nil {
		t.Fatal(err)
	}
	want := "@L:(0)\n" +
		"\t[1 2]\n" +
		"@R:(0)\n" +
		"\t@L:(1)\n" +
		"\t\t[3]\n" +
		"\t@R:(1)\n" +
		"\t\t[4 5]\n"
	if got := Sprint(tree); got != want {
		t.Errorf("unexpected rendering:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintRootLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parti")
	defer teardown()

	tree, err := Build(ints(1, 3), 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := Sprint(tree); got != "[1 2 3]\n" {
		t.Errorf("unexpected rendering: %q", got)
	}
}

func TestDotOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parti")
	defer teardown()

	tree, err := Build(ints(1, 5), 2)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	Dot(&sb, tree)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected DOT header, got %q", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("expected DOT footer, got %q", out)
	}
	// 2 internal nodes with 2 edges each.
	if n := strings.Count(out, "->"); n != 4 {
		t.Errorf("edge count: got=%d want=4", n)
	}
	if !strings.Contains(out, "[1 2]") {
		t.Errorf("expected leaf label in DOT output")
	}
}
