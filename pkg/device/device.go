package device

import (
	"fmt"
	"regexp"
	"strings"
)

// Type is the closed set of schematic component kinds.
type Type int

const (
	Resistor Type = iota
	Capacitor
	Inductor
	VoltageSource
	CurrentSource
	WaveformSource
	Ground
	OpAmp
	VCVS
	VCCS
	CCVS
	CCCS
	Diode
	BJT
	MOSFET
)

var typeNames = map[Type]string{
	Resistor:       "resistor",
	Capacitor:      "capacitor",
	Inductor:       "inductor",
	VoltageSource:  "voltage",
	CurrentSource:  "current",
	WaveformSource: "waveform",
	Ground:         "ground",
	OpAmp:          "opamp",
	VCVS:           "vcvs",
	VCCS:           "vccs",
	CCVS:           "ccvs",
	CCCS:           "cccs",
	Diode:          "diode",
	BJT:            "bjt",
	MOSFET:         "mosfet",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// ParseType maps a schematic file type name to its Type.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown component type: %s", name)
}

var terminalCounts = map[Type]int{
	Resistor:       2,
	Capacitor:      2,
	Inductor:       2,
	VoltageSource:  2,
	CurrentSource:  2,
	WaveformSource: 2,
	Ground:         1,
	OpAmp:          3, // in+, in-, out
	VCVS:           4, // out+, out-, ctrl+, ctrl-
	VCCS:           4,
	CCVS:           4,
	CCCS:           4,
	Diode:          2, // anode, cathode
	BJT:            3, // collector, base, emitter
	MOSFET:         3, // drain, gate, source (bulk tied to source)
}

// TerminalCount returns how many pins a component of type t exposes.
func (t Type) TerminalCount() int {
	return terminalCounts[t]
}

// Element letters the netlist syntax keys device behavior off. Ground
// has none (it never emits an element line); op-amps instantiate a
// subcircuit, so their lines carry X regardless of the component ID.
var elementPrefixes = map[Type]string{
	Resistor:      "R",
	Capacitor:     "C",
	Inductor:      "L",
	VoltageSource: "V",
	CurrentSource: "I",
	OpAmp:         "X",
	VCVS:          "E",
	VCCS:          "G",
	CCVS:          "H",
	CCCS:          "F",
	Diode:         "D",
	BJT:           "Q",
	MOSFET:        "M",
}

// Prefix returns the element letter for t, or "" when t never emits
// its own element line (Ground) or accepts either letter (waveform
// sources may be V or I flavored).
func (t Type) Prefix() string {
	return elementPrefixes[t]
}

var idRe = regexp.MustCompile(`^[A-Za-z]+\d+$`)

// ValidID reports whether id has the letters-then-digits shape every
// component identifier must carry.
func ValidID(id string) bool {
	return idRe.MatchString(id)
}

// Component is one placed schematic part. ID is immutable once the
// part exists; Value is the raw user string (SI-suffixed magnitude, or
// a function-call spec for waveform sources) and stays unparsed until
// netlist emission.
type Component struct {
	ID    string
	Type  Type
	Value string
}

// Terminal identifies one pin of one component.
type Terminal struct {
	Component string
	Pin       int
}

func (t Terminal) String() string {
	return fmt.Sprintf("%s:%d", t.Component, t.Pin)
}

// Wire joins two terminals. A wire's identity is its position in the
// schematic's wire list, so the struct itself carries no index.
type Wire struct {
	A Terminal
	B Terminal
}
