package netlistio

import (
	"fmt"

	"github.com/gp4par/gp4par/pkg/par"
)

// file is the format-neutral shape a netlist file parses into,
// shared by the JSON and YAML loaders.
type file struct {
	Ports []filePort `json:"ports" yaml:"ports"`
	Cells []Cell     `json:"cells" yaml:"cells"`
}

type filePort struct {
	Name      string `json:"name" yaml:"name"`
	Direction string `json:"direction" yaml:"direction"`
	Net       string `json:"net" yaml:"net"`
}

func parseDirection(s string) (par.PortDirection, error) {
	switch s {
	case "input":
		return par.DirInput, nil
	case "output":
		return par.DirOutput, nil
	case "inout":
		return par.DirInout, nil
	default:
		return 0, fmt.Errorf("unknown port direction %q", s)
	}
}

// build turns a parsed file into a Module, wiring every cell
// connection and top-level port binding into the net it names.
func build(f *file) (*Module, error) {
	m := &Module{}

	netsByName := map[string]*net{}
	var netOrder []string
	getNet := func(name string) *net {
		if n, ok := netsByName[name]; ok {
			return n
		}
		n := &net{name: name}
		netsByName[name] = n
		netOrder = append(netOrder, name)
		return n
	}

	cells := make([]*Cell, len(f.Cells))
	for i := range f.Cells {
		c := f.Cells[i]
		cells[i] = &c
		m.cells = append(m.cells, cells[i])
	}

	for _, p := range f.Ports {
		dir, err := parseDirection(p.Direction)
		if err != nil {
			return nil, fmt.Errorf("port %q: %w", p.Name, err)
		}
		n := getNet(p.Net)
		n.ports = append(n.ports, par.TopLevelPortRef{PortName: p.Name, Direction: dir})
	}

	for _, c := range cells {
		for portName, netNames := range c.Conns {
			isVector := len(netNames) > 1
			for bit, netName := range netNames {
				n := getNet(netName)
				n.nodePorts = append(n.nodePorts, par.CellPortRef{
					Cell:     c,
					PortName: portName,
					IsVector: isVector,
					BitIndex: bit,
				})
			}
		}
	}

	for _, name := range netOrder {
		m.nets = append(m.nets, netsByName[name])
	}

	return m, nil
}
