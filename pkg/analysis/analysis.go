// Package analysis defines the simulation analysis taxonomy shared by
// the netlist generator and the result parsers, and recovers structured
// numbers from the simulator's textual output formats.
//
// Every parser in this package is a pure function over text. A template
// miss returns a nil result, never an error: garbage input is data the
// simulator produced, not a fault of ours. Callers that need to tell
// "no data" apart from "simulator died" must also look at the exit
// status.
package analysis

import (
	"fmt"
	"strings"
)

// Type is the closed set of supported analyses.
type Type int

const (
	OP Type = iota
	DCSweep
	ACSweep
	Transient
	TempSweep
	Noise
	Sensitivity
	PoleZero
	TransferFunc
)

var typeNames = map[Type]string{
	OP:           "DC Operating Point",
	DCSweep:      "DC Sweep",
	ACSweep:      "AC Sweep",
	Transient:    "Transient",
	TempSweep:    "Temperature Sweep",
	Noise:        "Noise",
	Sensitivity:  "Sensitivity",
	PoleZero:     "Pole-Zero",
	TransferFunc: "Transfer Function",
}

// Short tokens accepted in schematic files alongside the display names.
var typeAliases = map[string]Type{
	"op":   OP,
	"dc":   DCSweep,
	"ac":   ACSweep,
	"tran": Transient,
	"temp": TempSweep,
	"sens": Sensitivity,
	"pz":   PoleZero,
	"tf":   TransferFunc,
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("analysis(%d)", int(t))
}

// ParseType accepts either a display name ("AC Sweep") or a short
// token ("ac"), case-insensitively.
func ParseType(name string) (Type, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if strings.ToLower(n) == trimmed {
			return t, nil
		}
	}
	if t, ok := typeAliases[trimmed]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown analysis type: %s", name)
}

// Spec is an analysis request: the type plus its type-specific
// parameters. Unset keys fall back to documented defaults at netlist
// generation time.
type Spec struct {
	Type   Type
	Params map[string]string
}

// Param returns the parameter value for key, or def when absent/empty.
func (s Spec) Param(key, def string) string {
	if v, ok := s.Params[key]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}
