// Package netlistio implements the netlist collaborator the par
// package builds its netlist graph from: a synthesized-cell netlist
// loaded from JSON or YAML, grounded on the cell/net/port shape in
// Greenpak4NetlistCell and the surrounding netlist types.
package netlistio

import (
	"strings"

	"github.com/gp4par/gp4par/pkg/par"
)

// portTable is the fixed port-direction catalog for every GreenPak4
// primitive type (Table D). The netlist format never repeats this —
// it only names which net is attached to which port — so the builder
// needs it to tell a driver connection from a load connection.
var portTable = map[string]map[string]par.PortDirection{
	"GP_IBUF":  {"IN": par.DirInput, "OUT": par.DirOutput},
	"GP_OBUF":  {"IN": par.DirInput, "OUT": par.DirOutput},
	"GP_IOBUF": {"IN": par.DirInput, "OUT": par.DirOutput, "OE": par.DirInput},
	"GP_2LUT":  {"IN0": par.DirInput, "IN1": par.DirInput, "OUT": par.DirOutput},
	"GP_3LUT":  {"IN0": par.DirInput, "IN1": par.DirInput, "IN2": par.DirInput, "OUT": par.DirOutput},
	"GP_4LUT":  {"IN0": par.DirInput, "IN1": par.DirInput, "IN2": par.DirInput, "IN3": par.DirInput, "OUT": par.DirOutput},
	"GP_INV":   {"IN": par.DirInput, "OUT": par.DirOutput},
	"GP_SHREG": {"IN": par.DirInput, "CLK": par.DirInput, "RST": par.DirInput, "OUT": par.DirOutput},
	"GP_VREF":  {"VOUT": par.DirOutput},
	"GP_ACMP":  {"VIN": par.DirInput, "VREF": par.DirInput, "OUT": par.DirOutput},
	"GP_DAC":   {"VOUT": par.DirOutput, "DIN": par.DirInput},
	"GP_DFF":   {"D": par.DirInput, "CLK": par.DirInput, "NRST": par.DirInput, "Q": par.DirOutput},
	"GP_DFFSR": {"D": par.DirInput, "CLK": par.DirInput, "NRST": par.DirInput, "NSET": par.DirInput, "Q": par.DirOutput},
	"GP_ABUF":  {"IN": par.DirInput, "OUT": par.DirOutput},
	"GP_BANDGAP":  {"OUT": par.DirOutput},
	"GP_LFOSC":    {"CLKOUT": par.DirOutput},
	"GP_PGA":      {"VIN_P": par.DirInput, "VIN_N": par.DirInput, "VIN_SEL": par.DirInput, "VOUT": par.DirOutput},
	"GP_POR":      {"OUT": par.DirOutput},
	"GP_RCOSC":    {"CLKOUT": par.DirOutput, "CLKOUT_PREDIV": par.DirOutput},
	"GP_RINGOSC":  {"CLKOUT": par.DirOutput, "CLKOUT_PREDIV": par.DirOutput},
	"GP_SYSRESET": {"RST": par.DirInput},
	"GP_VDD":      {"OUT": par.DirOutput},
	"GP_VSS":      {"OUT": par.DirOutput},
	"GP_COUNT8":      {"CLK": par.DirInput, "RST": par.DirInput, "WRITE": par.DirInput, "OUT": par.DirOutput, "UNDERFLOW": par.DirOutput},
	"GP_COUNT8_ADV":  {"CLK": par.DirInput, "RST": par.DirInput, "WRITE": par.DirInput, "UP": par.DirInput, "OUT": par.DirOutput, "UNDERFLOW": par.DirOutput},
	"GP_COUNT14":     {"CLK": par.DirInput, "RST": par.DirInput, "WRITE": par.DirInput, "OUT": par.DirOutput, "UNDERFLOW": par.DirOutput},
	"GP_COUNT14_ADV": {"CLK": par.DirInput, "RST": par.DirInput, "WRITE": par.DirInput, "UP": par.DirInput, "OUT": par.DirOutput, "UNDERFLOW": par.DirOutput},
}

// Cell is a single synthesized primitive instance.
type Cell struct {
	CellName  string              `json:"name" yaml:"name"`
	CellType  string              `json:"type" yaml:"type"`
	Conns     map[string][]string `json:"connections" yaml:"connections"`
	Attrs     map[string]string   `json:"attributes" yaml:"attributes"`
	node      *par.Node
}

func (c *Cell) Name() string                     { return c.CellName }
func (c *Cell) Type() string                     { return c.CellType }
func (c *Cell) Connections() map[string][]string { return c.Conns }
func (c *Cell) Attributes() map[string]string    { return c.Attrs }
func (c *Cell) SetNode(n *par.Node)               { c.node = n }
func (c *Cell) Node() *par.Node                   { return c.node }

// LOCForBit returns the physical pin/resource assignment for the
// given bit of this cell's LOC attribute, splitting on whitespace the
// way a vector LOC ("P2 P3 P4") is written. Scalar cells should pass
// bit 0.
func (c *Cell) LOCForBit(bit int) (string, bool) {
	loc, ok := c.Attrs["LOC"]
	if !ok {
		return "", false
	}
	fields := strings.Fields(loc)
	if bit < 0 || bit >= len(fields) {
		return "", false
	}
	return fields[bit], true
}

// net is the built-up view of one electrical node: every top-level
// port reference and cell-port reference attached to it.
type net struct {
	name      string
	ports     []par.TopLevelPortRef
	nodePorts []par.CellPortRef
}

func (n *net) Name() string                     { return n.name }
func (n *net) Ports() []par.TopLevelPortRef     { return n.ports }
func (n *net) NodePorts() []par.CellPortRef     { return n.nodePorts }

// Module is a concrete par.NetlistModule built by parsing a netlist
// file (JSON or YAML) and resolving every net's connections.
type Module struct {
	cells   []par.NetlistCell
	nets    []par.NetlistNet
}

func (m *Module) Cells() []par.NetlistCell { return m.cells }
func (m *Module) Nets() []par.NetlistNet   { return m.nets }

func (m *Module) PortDirection(cellType, portName string) (par.PortDirection, bool) {
	ports, ok := portTable[cellType]
	if !ok {
		return 0, false
	}
	dir, ok := ports[portName]
	return dir, ok
}
