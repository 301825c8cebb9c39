package circuit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/device"
)

func term(comp string, pin int) device.Terminal {
	return device.Terminal{Component: comp, Pin: pin}
}

func wire(a string, ap int, b string, bp int) device.Wire {
	return device.Wire{A: term(a, ap), B: term(b, bp)}
}

func TestAddWireCases(t *testing.T) {
	g := New()
	g.AddComponent(device.Component{ID: "R1", Type: device.Resistor, Value: "1k"})
	g.AddComponent(device.Component{ID: "R2", Type: device.Resistor, Value: "2k"})
	g.AddComponent(device.Component{ID: "R3", Type: device.Resistor, Value: "3k"})

	// Case i: fresh node for two unconnected terminals.
	g.AddWire(wire("R1", 1, "R2", 0))
	n1, ok := g.NodeFor(term("R1", 1))
	require.True(t, ok)
	assert.True(t, n1.Contains(term("R2", 0)))
	assert.Equal(t, "nodeA", n1.Label())

	// Case ii: one endpoint already has a node.
	g.AddWire(wire("R2", 0, "R3", 0))
	n2, ok := g.NodeFor(term("R3", 0))
	require.True(t, ok)
	assert.Same(t, n1, n2)

	// Case iv: two distinct nodes merge.
	g.AddWire(wire("R1", 0, "R3", 1))
	g.AddWire(wire("R1", 0, "R2", 0))
	merged, ok := g.NodeFor(term("R3", 1))
	require.True(t, ok)
	assert.True(t, merged.Contains(term("R1", 0)))
	assert.True(t, merged.Contains(term("R1", 1)))
	nodes, _ := g.Stats()
	assert.Equal(t, 1, nodes)
}

func TestAddWireParallel(t *testing.T) {
	g := New()
	g.AddWire(wire("R1", 0, "R2", 0))
	g.AddWire(wire("R1", 0, "R2", 0))

	n, ok := g.NodeFor(term("R1", 0))
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, n.Wires())
	nodes, wires := g.Stats()
	assert.Equal(t, 1, nodes)
	assert.Equal(t, 2, wires)
}

func TestGroundPropagation(t *testing.T) {
	g := New()
	g.AddComponent(device.Component{ID: "GND1", Type: device.Ground})
	g.AddComponent(device.Component{ID: "R1", Type: device.Resistor, Value: "1k"})
	g.AddComponent(device.Component{ID: "V1", Type: device.VoltageSource, Value: "5"})

	gn, ok := g.NodeFor(term("GND1", 0))
	require.True(t, ok)
	assert.True(t, gn.IsGround())
	assert.Equal(t, "0", gn.Label())
	assert.Equal(t, "0", gn.NetName())

	g.AddWire(wire("R1", 1, "V1", 1))
	g.AddWire(wire("R1", 1, "GND1", 0))

	n, ok := g.NodeFor(term("V1", 1))
	require.True(t, ok)
	assert.True(t, n.IsGround())
	assert.Equal(t, "0", n.NetName())
}

func TestCustomLabelMergeTieBreak(t *testing.T) {
	g := New()
	g.AddWire(wire("R1", 0, "R2", 0))
	g.AddWire(wire("R3", 0, "R4", 0))
	require.True(t, g.SetLabel(term("R1", 0), "vin"))
	require.True(t, g.SetLabel(term("R3", 0), "vout"))

	// Merge direction follows the wire's first endpoint: R1's node
	// receives, so its label wins.
	g.AddWire(wire("R1", 0, "R3", 0))
	n, ok := g.NodeFor(term("R4", 0))
	require.True(t, ok)
	assert.Equal(t, "vin", n.Label())
	assert.Equal(t, "vin", n.NetName())
}

func TestCustomLabelOnGround(t *testing.T) {
	g := New()
	g.AddComponent(device.Component{ID: "GND1", Type: device.Ground})
	g.AddWire(wire("R1", 0, "GND1", 0))

	n, ok := g.NodeFor(term("R1", 0))
	require.True(t, ok)
	require.True(t, g.SetLabel(term("R1", 0), "ref"))
	assert.Equal(t, "ref (ground)", n.Label())
	assert.Equal(t, "0", n.NetName())
}

func TestRemoveWireAndRebuild(t *testing.T) {
	g := New()
	g.AddComponent(device.Component{ID: "GND1", Type: device.Ground})
	g.AddWire(wire("R1", 0, "R2", 0)) // 0
	g.AddWire(wire("R2", 1, "R3", 0)) // 1
	g.AddWire(wire("R4", 0, "R5", 0)) // 2

	g.RemoveWire(1)
	g.Rebuild()

	// Wire 1 is gone, the old index 2 wire is now index 1.
	n, ok := g.NodeFor(term("R1", 0))
	require.True(t, ok)
	assert.Equal(t, []int{0}, n.Wires())
	n2, ok := g.NodeFor(term("R4", 0))
	require.True(t, ok)
	assert.Equal(t, []int{1}, n2.Wires())
	_, ok = g.NodeFor(term("R2", 1))
	assert.False(t, ok, "terminal left unwired after removal")
	_, ok = g.NodeFor(term("R3", 0))
	assert.False(t, ok)

	// Ground singleton survives replay.
	gn, ok := g.NodeFor(term("GND1", 0))
	require.True(t, ok)
	assert.True(t, gn.IsGround())
}

func TestRebuildLabelStickiness(t *testing.T) {
	g := New()
	g.AddWire(wire("R1", 1, "R2", 0)) // 0
	g.AddWire(wire("R3", 0, "R4", 0)) // 1
	g.AddWire(wire("R5", 0, "R6", 0)) // 2
	require.True(t, g.SetLabel(term("R3", 0), "mid"))

	// Removing an unrelated wire must not strip the label from a node
	// whose membership did not change.
	g.RemoveWire(2)
	g.Rebuild()

	n, ok := g.NodeFor(term("R4", 0))
	require.True(t, ok)
	assert.Equal(t, "mid", n.Label())
}

func TestRebuildDeterministicLabels(t *testing.T) {
	build := func() []string {
		g := New()
		g.AddWire(wire("R1", 0, "R2", 0))
		g.AddWire(wire("R3", 0, "R4", 0))
		g.AddWire(wire("R5", 0, "R6", 0))
		g.Rebuild()
		g.Rebuild()
		var labels []string
		for _, n := range g.Nodes() {
			labels = append(labels, n.Label())
		}
		return labels
	}
	assert.Equal(t, []string{"nodeA", "nodeB", "nodeC"}, build())
	assert.Equal(t, build(), build())
}

// Every terminal referenced by a wire belongs to exactly one node, and
// the terminal map is the exact inverse of the nodes' terminal sets.
func TestTerminalMapInverse(t *testing.T) {
	g := New()
	g.AddComponent(device.Component{ID: "GND1", Type: device.Ground})
	for i := 0; i < 8; i++ {
		g.AddWire(wire(fmt.Sprintf("R%d", i), 1, fmt.Sprintf("R%d", i+1), 0))
	}
	g.AddWire(wire("R0", 1, "R8", 0))
	g.RemoveWire(3)
	g.Rebuild()

	tm := g.TerminalMap()
	seen := make(map[device.Terminal]int)
	for _, n := range g.Nodes() {
		for _, term := range n.Terminals() {
			seen[term]++
			assert.Same(t, n, tm[term])
		}
	}
	assert.Equal(t, len(tm), len(seen))
	for term, count := range seen {
		assert.Equal(t, 1, count, "terminal %v in more than one node", term)
	}
}

func TestRemoveComponent(t *testing.T) {
	g := New()
	g.AddComponent(device.Component{ID: "R1", Type: device.Resistor})
	g.AddComponent(device.Component{ID: "R2", Type: device.Resistor})
	g.AddWire(wire("R1", 0, "R2", 0))
	g.AddWire(wire("R1", 1, "R2", 1))

	g.RemoveComponent("R1")
	_, wires := g.Stats()
	assert.Equal(t, 0, wires)
	_, ok := g.NodeFor(term("R2", 0))
	assert.False(t, ok)
	assert.Len(t, g.Components(), 1)
}

func TestAlphaLabelSequence(t *testing.T) {
	assert.Equal(t, "A", alphaLabel(0))
	assert.Equal(t, "Z", alphaLabel(25))
	assert.Equal(t, "AA", alphaLabel(26))
	assert.Equal(t, "AZ", alphaLabel(51))
	assert.Equal(t, "BA", alphaLabel(52))
}
