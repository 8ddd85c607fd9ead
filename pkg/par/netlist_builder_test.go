package par

import (
	"errors"
	"testing"
)

func TestNetlistBuilder_MinimalPassthrough(t *testing.T) {
	r := testRegistry()
	m := newModule()

	u1 := newCell("u1", "GP_IBUF")
	u2 := newCell("u2", "GP_OBUF")
	m.cells = []NetlistCell{u1, u2}

	netP1 := &fakeNet{
		name:      "P1",
		ports:     []TopLevelPortRef{{PortName: "P1", Direction: DirInput}},
		nodePorts: []CellPortRef{{Cell: u1, PortName: "IN"}},
	}
	netW := &fakeNet{
		name:      "w",
		nodePorts: []CellPortRef{{Cell: u1, PortName: "OUT"}, {Cell: u2, PortName: "IN"}},
	}
	netP2 := &fakeNet{
		name:      "P2",
		ports:     []TopLevelPortRef{{PortName: "P2", Direction: DirOutput}},
		nodePorts: []CellPortRef{{Cell: u2, PortName: "OUT"}},
	}
	m.nets = []NetlistNet{netP1, netW, netP2}

	g, err := BuildNetlistGraph(m, r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(g.Nodes))
	}

	if len(u1.Node().Edges) != 1 {
		t.Fatalf("u1 got %d edges, want 1", len(u1.Node().Edges))
	}
	e := u1.Node().Edges[0]
	if e.Dst != u2.Node() || e.DstPort != "IN" {
		t.Fatalf("u1's edge goes to %v/%s, want u2/IN", e.Dst, e.DstPort)
	}
	if len(u2.Node().Edges) != 0 {
		t.Fatalf("u2 got %d outbound edges, want 0 (OUT drives nothing but the top port)", len(u2.Node().Edges))
	}
}

func TestNetlistBuilder_MultiFanoutLUT(t *testing.T) {
	r := testRegistry()
	m := newModule()

	u1 := newCell("u1", "GP_2LUT")
	u2 := newCell("u2", "GP_2LUT")
	u3 := newCell("u3", "GP_2LUT")
	u4 := newCell("u4", "GP_2LUT")
	m.cells = []NetlistCell{u1, u2, u3, u4}

	netW := &fakeNet{
		name: "w",
		nodePorts: []CellPortRef{
			{Cell: u1, PortName: "OUT"},
			{Cell: u2, PortName: "IN0"},
			{Cell: u3, PortName: "IN0"},
			{Cell: u4, PortName: "IN1"},
		},
	}
	m.nets = []NetlistNet{netW}

	_, err := BuildNetlistGraph(m, r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edges := u1.Node().Edges
	if len(edges) != 3 {
		t.Fatalf("got %d edges, want exactly 3", len(edges))
	}
	wantDst := []struct {
		node *Node
		port string
	}{
		{u2.Node(), "IN0"},
		{u3.Node(), "IN0"},
		{u4.Node(), "IN1"},
	}
	for i, w := range wantDst {
		if edges[i].Dst != w.node || edges[i].DstPort != w.port {
			t.Errorf("edge %d = %v/%s, want %v/%s (load list order must be preserved)", i, edges[i].Dst, edges[i].DstPort, w.node, w.port)
		}
	}
}

func TestNetlistBuilder_IllegalDirectPortToLUT(t *testing.T) {
	r := testRegistry()
	m := newModule()

	u5 := newCell("u5", "GP_2LUT")
	m.cells = []NetlistCell{u5}

	netW := &fakeNet{
		name:      "w",
		ports:     []TopLevelPortRef{{PortName: "P", Direction: DirInput}},
		nodePorts: []CellPortRef{{Cell: u5, PortName: "IN0"}},
	}
	m.nets = []NetlistNet{netW}

	_, err := BuildNetlistGraph(m, r, nil)
	if err == nil {
		t.Fatal("expected a fatal error")
	}
	want := `Net "w" directly drives cell u5 port IN0 (type GP_2LUT, should be IOB)`
	if err.Error() != want {
		t.Fatalf("got message %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrPortDrivesNonIOB) {
		t.Error("error should wrap ErrPortDrivesNonIOB")
	}
}

func TestNetlistBuilder_IllegalDirectPortToOBUF(t *testing.T) {
	r := testRegistry()
	m := newModule()

	u1 := newCell("u1", "GP_OBUF")
	m.cells = []NetlistCell{u1}

	netP := &fakeNet{
		name:      "P",
		ports:     []TopLevelPortRef{{PortName: "P", Direction: DirInput}},
		nodePorts: []CellPortRef{{Cell: u1, PortName: "IN"}},
	}
	m.nets = []NetlistNet{netP}

	_, err := BuildNetlistGraph(m, r, nil)
	if err == nil {
		t.Fatal("expected a fatal error: an OBUF is not a legal load on a port-sourced net")
	}
	if !errors.Is(err, ErrPortDrivesNonIOB) {
		t.Error("error should wrap ErrPortDrivesNonIOB")
	}
}

func TestNetlistBuilder_MultiplyDrivenPort(t *testing.T) {
	r := testRegistry()
	m := newModule()

	netW := &fakeNet{
		name: "w",
		ports: []TopLevelPortRef{
			{PortName: "P1", Direction: DirInput},
			{PortName: "P2", Direction: DirInput},
		},
	}
	m.nets = []NetlistNet{netW}

	_, err := BuildNetlistGraph(m, r, nil)
	if err == nil {
		t.Fatal("expected a fatal error")
	}
	want := `Net "w" is connected directly to multiple top-level ports (need an IOB)`
	if err.Error() != want {
		t.Fatalf("got message %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrMultiplyDrivenPort) {
		t.Error("error should wrap ErrMultiplyDrivenPort")
	}
}

func TestNetlistBuilder_DanglingNet(t *testing.T) {
	r := testRegistry()
	m := newModule()

	u1 := newCell("u1", "GP_2LUT")
	m.cells = []NetlistCell{u1}

	netW := &fakeNet{
		name:      "w",
		nodePorts: []CellPortRef{{Cell: u1, PortName: "IN0"}},
	}
	m.nets = []NetlistNet{netW}

	_, err := BuildNetlistGraph(m, r, nil)
	if err == nil {
		t.Fatal("expected a fatal error")
	}
	want := `Net "w" has loads, but no driver`
	if err.Error() != want {
		t.Fatalf("got message %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrDanglingNet) {
		t.Error("error should wrap ErrDanglingNet")
	}
}

func TestNetlistBuilder_UndrivenNetNoLoadsIsLegal(t *testing.T) {
	r := testRegistry()
	m := newModule()
	m.nets = []NetlistNet{&fakeNet{name: "unused"}}

	_, err := BuildNetlistGraph(m, r, nil)
	if err != nil {
		t.Fatalf("undriven net with no loads must be legal, got: %v", err)
	}
}

func TestNetlistBuilder_UnknownPrimitive(t *testing.T) {
	r := testRegistry()
	m := newModule()
	m.cells = []NetlistCell{newCell("u9", "GP_NOT_REAL")}

	_, err := BuildNetlistGraph(m, r, nil)
	if err == nil {
		t.Fatal("expected a fatal error")
	}
	want := `Cell "u9" is of type "GP_NOT_REAL" which is not a valid GreenPak4 primitive`
	if err.Error() != want {
		t.Fatalf("got message %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrUnknownPrimitive) {
		t.Error("error should wrap ErrUnknownPrimitive")
	}
}

func TestNetlistBuilder_VectorNetLabel(t *testing.T) {
	r := testRegistry()
	m := newModule()

	drv := newCell("u1", "GP_2LUT")
	load := newCell("u2", "GP_DFF")
	m.cells = []NetlistCell{drv, load}

	netW := &fakeNet{
		name: "w",
		nodePorts: []CellPortRef{
			{Cell: drv, PortName: "OUT"},
			{Cell: load, PortName: "D", IsVector: true, BitIndex: 3},
		},
	}
	m.nets = []NetlistNet{netW}

	_, err := BuildNetlistGraph(m, r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := drv.Node().Edges[0]
	if e.NetLabel != "D[3]" {
		t.Fatalf("got net label %q, want %q", e.NetLabel, "D[3]")
	}
}
