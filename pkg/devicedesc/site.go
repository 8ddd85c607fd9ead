// Package devicedesc implements the device collaborator the par
// package builds its device graph from: a JSON-described catalog of
// physical sites on a GreenPak4 part, grounded on the pin/port
// enumeration in the original greenpak4 firmware sources.
package devicedesc

import "github.com/gp4par/gp4par/pkg/par"

// site is the shared embedding for every concrete DeviceSite. It
// mirrors Greenpak4BitstreamEntity's node/port bookkeeping.
type site struct {
	kind   par.SiteKind
	in     []string
	out    []string
	matrix int
	name   string
	node   *par.Node
}

func (s *site) Kind() par.SiteKind        { return s.kind }
func (s *site) InputPorts() []string      { return s.in }
func (s *site) OutputPorts() []string     { return s.out }
func (s *site) Matrix() int               { return s.matrix }
func (s *site) SetNode(n *par.Node)       { s.node = n }
func (s *site) Node() *par.Node           { return s.node }
func (s *site) DebugName() string         { return s.name }

// IOB is a single I/O block, either bitfile format "type A" (supports
// input, output, and bidirectional use) or "type B" (output or input
// only, no output-enable control) per Greenpak4IOBTypeA/B.
type IOB struct {
	site
	typeA     bool
	inputOnly bool
	pin       int
}

func (s *IOB) IsTypeA() bool     { return s.typeA }
func (s *IOB) IsInputOnly() bool { return s.inputOnly }
func (s *IOB) PinNumber() int    { return s.pin }

func newIOB(name string, pin, matrix int, typeA, inputOnly bool) *IOB {
	iob := &IOB{typeA: typeA, inputOnly: inputOnly, pin: pin}
	iob.kind = par.SiteIOB
	iob.matrix = matrix
	iob.name = name
	switch {
	case !inputOnly:
		iob.in = []string{"IN"}
		iob.out = []string{"OUT"}
	default:
		iob.out = []string{"OUT"}
	}
	return iob
}

// Flipflop is a single DFF or DFFSR site.
type Flipflop struct {
	site
	setReset bool
}

func (f *Flipflop) HasSetReset() bool { return f.setReset }

func newFlipflop(name string, matrix int, setReset bool) *Flipflop {
	f := &Flipflop{setReset: setReset}
	f.kind = par.SiteDFF
	f.matrix = matrix
	f.name = name
	f.in = []string{"D", "CLK", "NRST"}
	if setReset {
		f.in = append(f.in, "NSET")
	}
	f.out = []string{"Q"}
	return f
}

// Counter is a single COUNT8/COUNT14 (optionally FSM-capable) site.
type Counter struct {
	site
	depth int
	fsm   bool
}

func (c *Counter) Depth() int   { return c.depth }
func (c *Counter) HasFSM() bool { return c.fsm }

func newCounter(name string, matrix, depth int, fsm bool) *Counter {
	c := &Counter{depth: depth, fsm: fsm}
	c.kind = par.SiteCount8
	if depth == 14 {
		c.kind = par.SiteCount14
	}
	c.matrix = matrix
	c.name = name
	c.in = []string{"CLK", "RST", "WRITE"}
	c.out = []string{"OUT", "UNDERFLOW"}
	if fsm {
		c.in = append(c.in, "UP")
	}
	return c
}

func newSite(name string, kind par.SiteKind, matrix int, in, out []string) *site {
	return &site{kind: kind, matrix: matrix, name: name, in: in, out: out}
}
