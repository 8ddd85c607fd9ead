package par

// PortDirection is a module or cell port's signal direction.
type PortDirection int

const (
	DirInput PortDirection = iota
	DirOutput
	DirInout
)

// NetlistCell is the shape a synthesized primitive instance must
// satisfy (spec §3, §6). Concrete implementations live outside this
// package (see pkg/netlistio).
type NetlistCell interface {
	Name() string
	Type() string
	// Connections maps a port name to the ordered list of net names
	// attached to it (vector ports preserve bit order).
	Connections() map[string][]string
	Attributes() map[string]string
	// SetNode/Node: the back-reference to this cell's netlist-graph
	// node, written once at construction (spec §9).
	SetNode(*Node)
	Node() *Node
}

// TopLevelPortRef is a net's reference to a module port (spec §6
// "ports").
type TopLevelPortRef struct {
	PortName  string
	Direction PortDirection
}

// CellPortRef is a net's reference to one bit of one cell's port
// (spec §6 "nodeports").
type CellPortRef struct {
	Cell     NetlistCell
	PortName string
	IsVector bool
	BitIndex int
}

// NetlistNet is a named electrical node: the module-port references
// and cell-port references attached to it (spec §3).
type NetlistNet interface {
	Name() string
	Ports() []TopLevelPortRef
	NodePorts() []CellPortRef
}

// NetlistModule is the top module being placed and routed (spec §6).
type NetlistModule interface {
	Cells() []NetlistCell
	Nets() []NetlistNet
	// PortDirection looks up the direction of a named port on the
	// module identified by cellType — i.e. "what direction is port p
	// on a cell of this primitive type". Used to distinguish driver
	// connections from load connections when walking a net's
	// cell-port references.
	PortDirection(cellType, portName string) (PortDirection, bool)
}
