package circuit

import (
	"sort"
	"strings"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/device"
)

// Node is one electrical net: the set of terminals held at the same
// potential, plus the wire indices that produced it. Nodes are owned
// by a Graph; a terminal belongs to at most one Node at a time.
type Node struct {
	terminals map[device.Terminal]struct{}
	wires     map[int]struct{}
	isGround  bool
	custom    string
	auto      string
}

func newNode(auto string) *Node {
	return &Node{
		terminals: make(map[device.Terminal]struct{}),
		wires:     make(map[int]struct{}),
		auto:      auto,
	}
}

func (n *Node) IsGround() bool { return n.isGround }

// CustomLabel returns the user-assigned net name, or "".
func (n *Node) CustomLabel() string { return n.custom }

// SetCustomLabel assigns a user net name. Labels are restricted to
// alphanumerics upstream so they are always legal netlist tokens.
func (n *Node) SetCustomLabel(label string) { n.custom = label }

// Label is the display name: the custom label when set (marked when
// the net is also ground), otherwise the auto label. An unnamed ground
// net displays as "0".
func (n *Node) Label() string {
	if n.custom != "" {
		if n.isGround {
			return n.custom + " (ground)"
		}
		return n.custom
	}
	if n.isGround {
		return "0"
	}
	return n.auto
}

// NetName is the token used in generated netlists. Ground is always
// the literal "0" no matter what the net is called on screen.
func (n *Node) NetName() string {
	if n.isGround {
		return "0"
	}
	if n.custom != "" {
		return n.custom
	}
	return n.auto
}

// Terminals returns the member terminals in a stable order.
func (n *Node) Terminals() []device.Terminal {
	out := make([]device.Terminal, 0, len(n.terminals))
	for t := range n.terminals {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Component != out[j].Component {
			return out[i].Component < out[j].Component
		}
		return out[i].Pin < out[j].Pin
	})
	return out
}

// Wires returns the contributing wire indices in ascending order.
func (n *Node) Wires() []int {
	out := make([]int, 0, len(n.wires))
	for i := range n.wires {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Contains reports whether t is a member of this net.
func (n *Node) Contains(t device.Terminal) bool {
	_, ok := n.terminals[t]
	return ok
}

// signature identifies a node by its terminal membership, independent
// of labels or wire indices. Used to carry custom labels across a
// rebuild.
func (n *Node) signature() string {
	terms := n.Terminals()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, "|")
}
