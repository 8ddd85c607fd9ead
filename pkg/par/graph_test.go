package par

import "testing"

func TestNode_HasLabel(t *testing.T) {
	g := &Graph{}
	n := g.NewNode(5, nil)
	n.AddAlternateLabel(3)
	n.AddAlternateLabel(2)

	for _, want := range []uint32{5, 3, 2} {
		if !n.HasLabel(want) {
			t.Errorf("HasLabel(%d) = false, want true", want)
		}
	}
	if n.HasLabel(99) {
		t.Error("HasLabel(99) = true, want false")
	}
}

func TestNode_AddAlternateLabel_Idempotent(t *testing.T) {
	g := &Graph{}
	n := g.NewNode(5, nil)
	n.AddAlternateLabel(3)
	n.AddAlternateLabel(3)
	n.AddAlternateLabel(5) // equals primary, must not duplicate

	if len(n.Alternate) != 1 {
		t.Fatalf("Alternate = %v, want exactly one entry", n.Alternate)
	}
}

func TestGraph_NodeOrderIsConstructionOrder(t *testing.T) {
	g := &Graph{}
	a := g.NewNode(1, "a")
	b := g.NewNode(2, "b")
	c := g.NewNode(3, "c")

	if g.Nodes[0] != a || g.Nodes[1] != b || g.Nodes[2] != c {
		t.Fatal("graph node order does not match construction order")
	}
	if a.ID() != 0 || b.ID() != 1 || c.ID() != 2 {
		t.Fatal("node IDs do not reflect construction order")
	}
}

func TestEdges_NotDeduplicated(t *testing.T) {
	g := &Graph{}
	a := g.NewNode(1, nil)
	b := g.NewNode(2, nil)

	a.AddEdge("OUT", b, "IN0", "w")
	a.AddEdge("OUT", b, "IN1", "w")

	if len(a.Edges) != 2 {
		t.Fatalf("got %d edges, want 2 (distinct ports must not merge)", len(a.Edges))
	}
}

func TestNode_HasLoadOnPort(t *testing.T) {
	g := &Graph{}
	a := g.NewNode(1, nil)
	b := g.NewNode(2, nil)

	if a.HasLoadOnPort("OUT") {
		t.Fatal("HasLoadOnPort should be false before any edge is added")
	}
	a.AddEdge("OUT", b, "IN", "w")
	if !a.HasLoadOnPort("OUT") {
		t.Fatal("HasLoadOnPort should be true after an edge is added from that port")
	}
	if a.HasLoadOnPort("OTHER") {
		t.Fatal("HasLoadOnPort should be false for a port with no edges")
	}
}

func TestGraph_MarshalSummary_Deterministic(t *testing.T) {
	build := func() []NodeSummary {
		g := &Graph{}
		a := g.NewNode(1, nil)
		b := g.NewNode(2, nil)
		a.AddAlternateLabel(9)
		a.AddEdge("OUT", b, "IN", "w")
		return g.MarshalSummary()
	}

	s1 := build()
	s2 := build()

	if len(s1) != len(s2) || len(s1) != 2 {
		t.Fatalf("unexpected summary lengths: %d, %d", len(s1), len(s2))
	}
	for i := range s1 {
		if s1[i].ID != s2[i].ID || s1[i].Primary != s2[i].Primary || s1[i].EdgeCount != s2[i].EdgeCount {
			t.Fatalf("summaries diverge at index %d: %+v vs %+v", i, s1[i], s2[i])
		}
		if len(s1[i].Alternate) != len(s2[i].Alternate) {
			t.Fatalf("alternate label sets diverge at index %d: %v vs %v", i, s1[i].Alternate, s2[i].Alternate)
		}
		for j := range s1[i].Alternate {
			if s1[i].Alternate[j] != s2[i].Alternate[j] {
				t.Fatalf("alternate label sets diverge at index %d: %v vs %v", i, s1[i].Alternate, s2[i].Alternate)
			}
		}
	}
}
