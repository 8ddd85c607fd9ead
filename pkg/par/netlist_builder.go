package par

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// BuildNetlistGraph instantiates one netlist-graph node per synthesized
// cell, resolving each cell's primitive type to a label via reg
// (failing fatally on unknown types), then converts every net into
// point-to-point edges, enforcing the I/O-boundary rules (spec §4.4).
//
// reg must already be Bootstrap()-ed. Returns the populated graph, or
// a *DiagnosticError on the first fatal condition encountered.
func BuildNetlistGraph(module NetlistModule, reg *Registry, log *logrus.Entry) (*Graph, error) {
	g := &Graph{}

	for _, cell := range module.Cells() {
		label, ok := reg.Resolve(cell.Type())
		if !ok {
			return nil, errUnknownPrimitive(cell.Name(), cell.Type())
		}
		n := g.NewNode(label, cell)
		cell.SetNode(n)
	}

	if err := makeNetlistEdges(module, log); err != nil {
		return nil, err
	}

	return g, nil
}

// makeNetlistEdges walks every net and emits edges per spec §4.4.
// Mirrors MakeNetlistEdges in the original make_graphs.cpp: determine
// whether the net is sourced by a top-level port, else find its single
// cell driver, then emit one edge per load.
func makeNetlistEdges(module NetlistModule, log *logrus.Entry) error {
	for _, net := range module.Nets() {
		var (
			source     *Node
			sourcePort string
		)

		sourcedByPort := false
		for _, p := range net.Ports() {
			if p.Direction != DirOutput {
				sourcedByPort = true
				break
			}
		}

		for _, np := range net.NodePorts() {
			dir, ok := module.PortDirection(np.Cell.Type(), np.PortName)
			if !ok || dir == DirInput {
				continue
			}
			source = np.Cell.Node()
			sourcePort = np.PortName
		}

		if log != nil {
			log.WithField("net", net.Name()).Debug("tracing net")
		}

		hasLoads := false

		if sourcedByPort {
			if len(net.Ports()) != 1 {
				return errMultiplyDrivenPort(net.Name())
			}

			for _, np := range net.NodePorts() {
				hasLoads = true
				switch np.Cell.Type() {
				case "GP_IBUF", "GP_IOBUF":
					continue
				}
				return errPortDrivesNonIOB(net.Name(), np.Cell.Name(), np.PortName, np.Cell.Type())
			}
			// Port-sourced nets are realized by IOB placement itself;
			// no edges are emitted here. A dead code path in the
			// original emitted port→cell edges directly; that path is
			// intentionally not reproduced (spec §9 Open Questions).
			continue
		}

		for _, np := range net.NodePorts() {
			dir, ok := module.PortDirection(np.Cell.Type(), np.PortName)
			if !ok || dir == DirOutput {
				continue
			}

			name := np.PortName
			if np.IsVector {
				name = fmt.Sprintf("%s[%d]", np.PortName, np.BitIndex)
			}

			hasLoads = true
			if source != nil {
				source.AddEdge(sourcePort, np.Cell.Node(), name, name)
			}
		}

		// BUGFIX (preserved from the original): undriven nets are
		// legal if they also have no loads. This happens when, for
		// example, some bits of a vector net were absorbed into hard
		// IP outside the modeled cells.
		if source == nil && !sourcedByPort && hasLoads {
			return errDanglingNet(net.Name())
		}
	}

	return nil
}
