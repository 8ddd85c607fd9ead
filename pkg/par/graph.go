package par

// Edge is a directed, owned-by-source connection between two nodes.
// Edges are not deduplicated: two edges between the same endpoints but
// differing ports are distinct (spec §3).
type Edge struct {
	SrcPort  string
	Dst      *Node
	DstPort  string
	NetLabel string
}

// Node is an element of a Graph: a primary label, zero or more
// alternate labels, an opaque payload, an outbound edge list, and a
// mate slot written at most once by the placer (spec §3).
type Node struct {
	id        int
	Primary   uint32
	Alternate []uint32
	Payload   interface{}
	Edges     []*Edge
	Mate      *Node
}

// ID returns the node's stable, construction-order-assigned identity.
// Used for deterministic serialization, not for equality (pointer
// identity is authoritative; ID exists for byte-stable output).
func (n *Node) ID() int { return n.id }

// Labels returns the node's full label set: {primary} ∪ alternates.
func (n *Node) Labels() []uint32 {
	out := make([]uint32, 0, 1+len(n.Alternate))
	out = append(out, n.Primary)
	out = append(out, n.Alternate...)
	return out
}

// HasLabel reports whether d is in the node's label set.
func (n *Node) HasLabel(d uint32) bool {
	if n.Primary == d {
		return true
	}
	for _, a := range n.Alternate {
		if a == d {
			return true
		}
	}
	return false
}

// AddAlternateLabel appends an alternate label. Duplicates are
// idempotent (spec §4.2).
func (n *Node) AddAlternateLabel(label uint32) {
	if label == n.Primary {
		return
	}
	for _, a := range n.Alternate {
		if a == label {
			return
		}
	}
	n.Alternate = append(n.Alternate, label)
}

// AddEdge appends an outbound edge. Port names are not validated
// against the destination's port list at construction time — the
// router matches them later by string (spec §4.2).
func (n *Node) AddEdge(srcPort string, dst *Node, dstPort string, netLabel string) *Edge {
	e := &Edge{SrcPort: srcPort, Dst: dst, DstPort: dstPort, NetLabel: netLabel}
	n.Edges = append(n.Edges, e)
	return e
}

// HasLoadOnPort reports whether this node has at least one outbound
// edge sourced from srcPort. Supplements spec.md via
// Greenpak4BitstreamEntity::HasLoadsOnPort — a read-only query, not
// part of any construction invariant; the build report does not use it.
func (n *Node) HasLoadOnPort(srcPort string) bool {
	for _, e := range n.Edges {
		if e.SrcPort == srcPort {
			return true
		}
	}
	return false
}

// DebugName returns a short human-readable identifier for log lines.
// Supplements spec.md via Greenpak4BitstreamEntity::GetOutputName.
func (n *Node) DebugName() string {
	if named, ok := n.Payload.(interface{ DebugName() string }); ok {
		return named.DebugName()
	}
	return ""
}

// Graph is an ordered collection of nodes. Iteration order is
// construction order, which downstream tie-breaking depends on
// (spec §4.2).
type Graph struct {
	Nodes []*Node
}

// NewNode creates a node with the given primary label and payload,
// appends it to the graph, and returns it. The payload is expected to
// store a back-reference to the returned node itself (spec §9
// "Payload back-references"); callers do that assignment since the Go
// payload types are concrete structs borrowed from outside this
// package.
func (g *Graph) NewNode(primary uint32, payload interface{}) *Node {
	n := &Node{id: len(g.Nodes), Primary: primary, Payload: payload}
	g.Nodes = append(g.Nodes, n)
	return n
}

// NodeSummary is the byte-stable, JSON-friendly projection of a Node
// used by MarshalSummary.
type NodeSummary struct {
	ID        int      `json:"id"`
	Primary   uint32   `json:"primary"`
	Alternate []uint32 `json:"alternate,omitempty"`
	EdgeCount int      `json:"edge_count"`
}

// MarshalSummary produces the construction-order, byte-stable
// serialization the Determinism testable property (spec §8) requires:
// same node order, same per-node edge count, same label sets, on every
// run given identical inputs.
func (g *Graph) MarshalSummary() []NodeSummary {
	out := make([]NodeSummary, len(g.Nodes))
	for i, n := range g.Nodes {
		out[i] = NodeSummary{
			ID:        n.ID(),
			Primary:   n.Primary,
			Alternate: append([]uint32(nil), n.Alternate...),
			EdgeCount: len(n.Edges),
		}
	}
	return out
}
