// Package par implements the graph construction and label-based
// matching core of the GreenPAK4 place-and-route compiler: typed
// device and netlist graphs, a shared label registry with legal
// primitive substitutions, and the fabric/dedicated routing edge
// enumeration a downstream placer consumes.
package par

import "github.com/sirupsen/logrus"

// Result bundles everything BuildGraphs produces for the placer
// collaborator (spec §6 "Outputs exposed to the placer collaborator").
type Result struct {
	NetlistGraph *Graph
	DeviceGraph  *Graph
	Registry     *Registry
}

// BuildGraphs is the core entry point (spec §6). It is pure with
// respect to its inputs aside from the back-references written onto
// netlist cells and device sites by SetNode. Construction runs to
// completion or returns a *DiagnosticError on the first fatal netlist
// condition encountered (spec §4.4, §7); there is no partial-output
// mode.
func BuildGraphs(netlist NetlistModule, device DeviceDescriptor, log *logrus.Entry) (*Result, error) {
	reg := NewRegistry()
	reg.Bootstrap()

	dgraph := BuildDeviceGraph(device, reg, log)

	ngraph, err := BuildNetlistGraph(netlist, reg, log)
	if err != nil {
		return nil, err
	}

	return &Result{NetlistGraph: ngraph, DeviceGraph: dgraph, Registry: reg}, nil
}
