package flat

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/trevnik/parti"
)

func ints(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func TestFlattenSmallTreeRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parti")
	defer teardown()

	records, err := Flatten(ints(1, 5), 2)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	want := []Record[int]{
		{ID: 0, Kind: KindNode, Side: SideLeft, Parent: NoParent},
		{ID: 1, Kind: KindLeaf, Side: SideLeft, Parent: 0, Elements: []int{1, 2}},
		{ID: 2, Kind: KindNode, Side: SideRight, Parent: 0},
		{ID: 3, Kind: KindLeaf, Side: SideLeft, Parent: 2, Elements: []int{3}},
		{ID: 4, Kind: KindLeaf, Side: SideRight, Parent: 2, Elements: []int{4, 5}},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("unexpected record list:\ngot:  %v\nwant: %v", records, want)
	}
}

func TestFlattenDegenerateInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parti")
	defer teardown()

	records, err := Flatten(ints(1, 3), 3)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single record, got %d", len(records))
	}
	r := records[0]
	if r.ID != 0 || r.Kind != KindLeaf || !r.IsRoot() {
		t.Errorf("unexpected degenerate record: %+v", r)
	}
	if !reflect.DeepEqual(r.Elements, []int{1, 2, 3}) {
		t.Errorf("payload: got=%v want=[1 2 3]", r.Elements)
	}
}

func TestFlattenDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parti")
	defer teardown()

	first, err := Flatten(ints(1, 23), 3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Flatten(ints(1, 23), 3)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two flatten runs over identical input differ")
	}
}

func TestFlattenInvalidConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parti")
	defer teardown()

	if _, err := Flatten(ints(1, 5), 0); err == nil {
		t.Errorf("expected configuration error for maxElems=0")
	}
}

func TestFlattenLinkageInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parti")
	defer teardown()

	records, err := Flatten(ints(1, 11), 2)
	if err != nil {
		t.Fatal(err)
	}
	ids := make(map[uint32]Record[int])
	children := make(map[uint32][]Record[int])
	roots := 0
	for _, r := range records {
		if _, dup := ids[r.ID]; dup {
			t.Fatalf("duplicate id %d", r.ID)
		}
		ids[r.ID] = r
		if r.IsRoot() {
			roots++
			if r.ID != 0 {
				t.Errorf("root id: got=%d want=0", r.ID)
			}
			continue
		}
		children[r.Parent] = append(children[r.Parent], r)
	}
	if roots != 1 {
		t.Fatalf("root count: got=%d want=1", roots)
	}
	for parent, kids := range children {
		if ids[parent].Kind != KindNode {
			t.Errorf("parent %d is not a node record", parent)
		}
		if len(kids) != 2 {
			t.Fatalf("parent %d has %d children, want 2", parent, len(kids))
		}
		var left, right *Record[int]
		for i := range kids {
			switch kids[i].Side {
			case SideLeft:
				left = &kids[i]
			case SideRight:
				right = &kids[i]
			}
		}
		if left == nil || right == nil {
			t.Fatalf("parent %d is missing a side", parent)
		}
		if left.ID >= right.ID {
			t.Errorf("parent %d: left id %d not below right id %d", parent, left.ID, right.ID)
		}
	}
	for _, r := range records {
		hasPayload := len(r.Elements) > 0
		if (r.Kind == KindLeaf) != hasPayload {
			t.Errorf("record %d: kind %s with payload=%v", r.ID, r.Kind, r.Elements)
		}
	}
}

func TestFlattenTreeMatchesFlatten(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parti")
	defer teardown()

	for n := 0; n <= 24; n++ {
		for maxElems := 1; maxElems <= 4; maxElems++ {
			direct, err := Flatten(ints(1, n), maxElems)
			if err != nil {
				t.Fatal(err)
			}
			tree, err := parti.Build(ints(1, n), maxElems)
			if err != nil {
				t.Fatal(err)
			}
			walked := FlattenTree(tree)
			if !reflect.DeepEqual(direct, walked) {
				t.Fatalf("n=%d maxElems=%d: Flatten and FlattenTree diverge\ndirect: %v\nwalked: %v",
					n, maxElems, direct, walked)
			}
		}
	}
}
