package circuit

import (
	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/device"
)

// Graph merges component terminals connected by wires into electrical
// nets. The node set is derived state: it can always be rebuilt from
// the component and wire lists alone, and Rebuild does exactly that
// after destructive edits. Not safe for concurrent mutation.
type Graph struct {
	components []device.Component
	wires      []device.Wire
	nodes      []*Node
	byTerminal map[device.Terminal]*Node
	autoSeq    int
}

func New() *Graph {
	return &Graph{
		byTerminal: make(map[device.Terminal]*Node),
	}
}

// AddComponent registers a placed component. Ground components get a
// singleton ground node for their only terminal right away; everything
// else joins the graph when a wire touches it.
func (g *Graph) AddComponent(c device.Component) {
	g.components = append(g.components, c)
	if c.Type == device.Ground {
		g.groundNode(device.Terminal{Component: c.ID, Pin: 0})
	}
}

// RemoveComponent drops a component and every wire touching it, then
// rebuilds the node set.
func (g *Graph) RemoveComponent(id string) {
	kept := g.components[:0]
	for _, c := range g.components {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	g.components = kept

	keptWires := g.wires[:0]
	for _, w := range g.wires {
		if w.A.Component == id || w.B.Component == id {
			continue
		}
		keptWires = append(keptWires, w)
	}
	g.wires = keptWires
	g.Rebuild()
}

// AddWire connects two terminals and returns the wire's index, which
// is its identity for removal. Four cases: neither endpoint has a net
// (new node), one has (extend it), both share one (parallel wire, the
// index is still recorded), or both have different nets (merge).
func (g *Graph) AddWire(w device.Wire) int {
	idx := len(g.wires)
	g.wires = append(g.wires, w)
	g.connect(idx, w)
	return idx
}

// RemoveWire deletes the wire at index i. Merges are not reversible
// from the nodes alone, so this only edits the wire list; the caller
// must Rebuild before reading nodes again. Later wires shift down by
// one, as index is positional identity.
func (g *Graph) RemoveWire(i int) {
	if i < 0 || i >= len(g.wires) {
		return
	}
	g.wires = append(g.wires[:i], g.wires[i+1:]...)
}

// Rebuild discards every node and replays all ground components and
// remaining wires in insertion order, so node identities and auto
// labels are a deterministic function of the surviving lists. Custom
// labels stick to any rebuilt node with identical terminal membership.
func (g *Graph) Rebuild() {
	saved := make(map[string]string)
	for _, n := range g.nodes {
		if n.custom != "" {
			saved[n.signature()] = n.custom
		}
	}

	g.nodes = nil
	g.byTerminal = make(map[device.Terminal]*Node)
	g.autoSeq = 0

	for _, c := range g.components {
		if c.Type == device.Ground {
			g.groundNode(device.Terminal{Component: c.ID, Pin: 0})
		}
	}
	for i, w := range g.wires {
		g.connect(i, w)
	}

	for _, n := range g.nodes {
		if label, ok := saved[n.signature()]; ok {
			n.custom = label
		}
	}
}

// NodeFor is a pure lookup; ok is false for an unconnected terminal.
func (g *Graph) NodeFor(t device.Terminal) (*Node, bool) {
	n, ok := g.byTerminal[t]
	return n, ok
}

// SetLabel names the net containing t. Returns false when t has no net.
func (g *Graph) SetLabel(t device.Terminal, label string) bool {
	n, ok := g.byTerminal[t]
	if !ok {
		return false
	}
	n.custom = label
	return true
}

// Nodes returns the live nodes in creation order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// TerminalMap returns a copy of the terminal-to-node mapping.
func (g *Graph) TerminalMap() map[device.Terminal]*Node {
	out := make(map[device.Terminal]*Node, len(g.byTerminal))
	for t, n := range g.byTerminal {
		out[t] = n
	}
	return out
}

func (g *Graph) Components() []device.Component {
	out := make([]device.Component, len(g.components))
	copy(out, g.components)
	return out
}

func (g *Graph) Wires() []device.Wire {
	out := make([]device.Wire, len(g.wires))
	copy(out, g.wires)
	return out
}

// Stats reports graph sizes for progress logging.
func (g *Graph) Stats() (nodes, wires int) {
	return len(g.nodes), len(g.wires)
}

func (g *Graph) connect(idx int, w device.Wire) {
	na, aok := g.byTerminal[w.A]
	nb, bok := g.byTerminal[w.B]

	switch {
	case !aok && !bok:
		n := g.freshNode()
		g.attach(n, w.A)
		g.attach(n, w.B)
		n.wires[idx] = struct{}{}

	case aok && !bok:
		g.attach(na, w.B)
		na.wires[idx] = struct{}{}

	case !aok && bok:
		g.attach(nb, w.A)
		nb.wires[idx] = struct{}{}

	case na == nb:
		// Parallel wiring inside one net; only the index is new.
		na.wires[idx] = struct{}{}

	default:
		g.merge(na, nb)
		na.wires[idx] = struct{}{}
	}
}

// merge folds src into dst. Ground wins the OR; when both sides carry
// a custom label the receiving node's label is kept, and the merge
// direction follows the wire's first endpoint.
func (g *Graph) merge(dst, src *Node) {
	for t := range src.terminals {
		dst.terminals[t] = struct{}{}
		g.byTerminal[t] = dst
	}
	for i := range src.wires {
		dst.wires[i] = struct{}{}
	}
	dst.isGround = dst.isGround || src.isGround
	if dst.custom == "" {
		dst.custom = src.custom
	}

	for i, n := range g.nodes {
		if n == src {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
}

func (g *Graph) attach(n *Node, t device.Terminal) {
	n.terminals[t] = struct{}{}
	g.byTerminal[t] = n
}

func (g *Graph) freshNode() *Node {
	n := newNode("node" + alphaLabel(g.autoSeq))
	g.autoSeq++
	g.nodes = append(g.nodes, n)
	return n
}

func (g *Graph) groundNode(t device.Terminal) *Node {
	n := newNode("0")
	n.isGround = true
	g.attach(n, t)
	g.nodes = append(g.nodes, n)
	return n
}

// alphaLabel yields A..Z, AA..AZ, BA.. for n = 0, 1, ...
func alphaLabel(n int) string {
	s := ""
	n++
	for n > 0 {
		n--
		s = string(rune('A'+n%26)) + s
		n /= 26
	}
	return s
}
