package convergence

import (
	"fmt"
	"strings"
)

// Diagnosis is the fixed explanation attached to a failure category.
// Causes and suggestions are ordered most-likely first and surfaced to
// the user verbatim.
type Diagnosis struct {
	Category    Category
	Message     string
	Causes      []string
	Suggestions []string
}

var diagnoses = map[Category]Diagnosis{
	DCConvergence: {
		Category: DCConvergence,
		Message:  "The simulator could not find a stable DC operating point.",
		Causes: []string{
			"strong nonlinear feedback (op-amps, transistors) with no stable bias point",
			"floating nodes with no DC path to ground",
			"very large spread between the smallest and largest component values",
		},
		Suggestions: []string{
			"check that every node has a DC path to ground",
			"add a large resistor (e.g. 1G) across floating nodes",
			"reduce source values or add series resistance",
		},
	},
	TimestepTooSmall: {
		Category: TimestepTooSmall,
		Message:  "The transient solver reduced its timestep below the minimum and gave up.",
		Causes: []string{
			"a waveform with edges much faster than the requested timestep",
			"discontinuous source definitions (zero rise or fall time)",
			"an unstable switching loop",
		},
		Suggestions: []string{
			"increase rise and fall times on pulse sources",
			"shorten the simulated time span or relax the max timestep",
			"add small capacitances to stiff nodes",
		},
	},
	SingularMatrix: {
		Category: SingularMatrix,
		Message:  "The circuit matrix is singular; the topology has no unique solution.",
		Causes: []string{
			"a node connected only through capacitors (no DC path)",
			"a loop of ideal voltage sources or inductors",
			"an unconnected or short-circuited component",
		},
		Suggestions: []string{
			"verify every component terminal is wired",
			"break voltage-source loops with a small series resistance",
			"ground at least one node of the circuit",
		},
	},
	SourceSteppingFailed: {
		Category: SourceSteppingFailed,
		Message:  "Ramping the sources from zero failed to reach a converged solution.",
		Causes: []string{
			"bistable circuit with no preferred state at low drive",
			"device models turning on abruptly during the ramp",
		},
		Suggestions: []string{
			"set an initial condition (.ic) near the expected operating point",
			"relax convergence tolerances and retry",
		},
	},
	Unknown: {
		Category: Unknown,
		Message:  "The simulation failed for an unrecognized reason.",
		Causes: []string{
			"a netlist syntax problem",
			"a simulator crash unrelated to convergence",
		},
		Suggestions: []string{
			"inspect the raw simulator output",
			"re-check component values and wiring",
		},
	},
}

// Diagnose returns the fixed diagnosis for a category.
func Diagnose(category Category) Diagnosis {
	if d, ok := diagnoses[category]; ok {
		return d
	}
	return diagnoses[Unknown]
}

// Explain renders a user-facing explanation. When relaxed is true the
// text notes that the run only succeeded after loosening tolerances,
// which the user should treat as a warning about the circuit.
func Explain(d Diagnosis, relaxed bool) string {
	var b strings.Builder
	if relaxed {
		b.WriteString("Note: this simulation succeeded only after relaxing tolerances.\n\n")
	}
	b.WriteString(d.Message)
	b.WriteString("\n\nPossible causes:\n")
	for _, c := range d.Causes {
		fmt.Fprintf(&b, "  - %s\n", c)
	}
	b.WriteString("\nSuggestions:\n")
	for _, s := range d.Suggestions {
		fmt.Fprintf(&b, "  - %s\n", s)
	}
	return b.String()
}
