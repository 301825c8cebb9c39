// Package netlist compiles a schematic's components and node graph
// into simulator source text.
//
// Generation never fails for a structurally valid node graph. Unknown
// component or analysis types are skipped rather than aborting the
// compile, but every skip is reported back as a warning so callers can
// surface it; silence here has bitten before.
package netlist

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/analysis"
	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/circuit"
	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/device"
)

// Input is everything a compile consumes: the placed components, the
// terminal-to-node mapping derived from the wire list, the analysis
// request, and optional raw measurement directives.
type Input struct {
	Title        string
	Components   []device.Component
	Nodes        map[device.Terminal]*circuit.Node
	Analysis     analysis.Spec
	Measurements []string
}

const opampSubcktName = "opamp_ideal"

// Shared idealized op-amp. Emitted once, before any instance, and only
// when at least one op-amp is placed.
var opampSubckt = []string{
	"* ideal op-amp: high-gain VCVS",
	".subckt " + opampSubcktName + " inp inn out",
	"E1 out 0 inp inn 1e6",
	".ends " + opampSubcktName,
}

// Default semiconductor models, emitted once per used device family.
var defaultModels = map[device.Type]struct{ name, line string }{
	device.Diode:  {"DMOD", ".model DMOD D"},
	device.BJT:    {"QMOD", ".model QMOD NPN"},
	device.MOSFET: {"MMOD", ".model MMOD NMOS"},
}

var modelNameRe = regexp.MustCompile(`^[A-Za-z]\w*$`)

// Generate compiles the input to netlist text. Components are visited
// in sorted-ID order so an unchanged model always compiles to
// byte-identical text. The returned warnings list every soft-skip and
// substitution the compile performed.
func Generate(in Input) (string, []string) {
	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	comps := make([]device.Component, len(in.Components))
	copy(comps, in.Components)
	sort.Slice(comps, func(i, j int) bool { return comps[i].ID < comps[j].ID })

	ids := make(map[string]bool, len(comps))
	hasOpamp := false
	for _, c := range comps {
		ids[c.ID] = true
		if c.Type == device.OpAmp {
			hasOpamp = true
		}
	}

	netName := func(c device.Component, pin int) string {
		t := device.Terminal{Component: c.ID, Pin: pin}
		if n, ok := in.Nodes[t]; ok {
			return n.NetName()
		}
		warnf("terminal %s is not connected to any node", t)
		return fmt.Sprintf("nc_%s_%d", c.ID, pin)
	}

	title := in.Title
	if title == "" {
		title = "untitled circuit"
	}

	var lines []string
	lines = append(lines, "* "+title)

	if hasOpamp {
		lines = append(lines, opampSubckt...)
	}

	modelsUsed := make(map[device.Type]bool)
	for _, c := range comps {
		elem, warns := elementLines(c, netName, ids, modelsUsed)
		warnings = append(warnings, warns...)
		lines = append(lines, elem...)
	}

	// One .model line per semiconductor family that fell back to the
	// built-in model, in a fixed order.
	for _, t := range []device.Type{device.Diode, device.BJT, device.MOSFET} {
		if modelsUsed[t] {
			lines = append(lines, defaultModels[t].line)
		}
	}

	directive, warns := buildDirectives(in, comps)
	warnings = append(warnings, warns...)
	lines = append(lines, directive...)

	for _, m := range in.Measurements {
		lines = append(lines, measurementLine(m))
	}

	lines = append(lines, ".control", "run")
	if in.Analysis.Type == analysis.Transient {
		outfile := in.Analysis.Param("outfile", "transient.out")
		lines = append(lines, "wrdata "+outfile+" all")
	} else {
		lines = append(lines, "print all")
	}
	lines = append(lines, ".endc", ".end")

	return strings.Join(lines, "\n") + "\n", warnings
}

type netNamer func(c device.Component, pin int) string

func elementLines(c device.Component, netName netNamer, ids map[string]bool, modelsUsed map[device.Type]bool) ([]string, []string) {
	switch c.Type {
	case device.Ground:
		// Grounds shape the node topology only; no element line.
		return nil, nil

	case device.Resistor, device.Capacitor, device.Inductor:
		return []string{fmt.Sprintf("%s %s %s %s",
			c.ID, netName(c, 0), netName(c, 1), c.Value)}, nil

	case device.VoltageSource, device.CurrentSource:
		return []string{fmt.Sprintf("%s %s %s DC %s",
			c.ID, netName(c, 0), netName(c, 1), c.Value)}, nil

	case device.WaveformSource:
		spec, err := device.NormalizeWaveform(c.Value)
		if err != nil {
			return nil, []string{fmt.Sprintf("skipping %s: %v", c.ID, err)}
		}
		return []string{fmt.Sprintf("%s %s %s %s",
			c.ID, netName(c, 0), netName(c, 1), spec)}, nil

	case device.VCVS, device.VCCS:
		return []string{fmt.Sprintf("%s %s %s %s %s %s",
			c.ID, netName(c, 0), netName(c, 1), netName(c, 2), netName(c, 3), c.Value)}, nil

	case device.CCVS, device.CCCS:
		// Current-controlled elements reference a named voltage
		// source's branch current, not a node pair, so a zero-valued
		// sensing source is inserted in series on the control branch.
		sense := senseName(c.ID, ids)
		return []string{
			fmt.Sprintf("%s %s %s %s %s", c.ID, netName(c, 0), netName(c, 1), sense, c.Value),
			fmt.Sprintf("%s %s %s 0", sense, netName(c, 2), netName(c, 3)),
		}, nil

	case device.OpAmp:
		inst := c.ID
		if !strings.HasPrefix(strings.ToUpper(inst), "X") {
			inst = "X" + inst
		}
		return []string{fmt.Sprintf("%s %s %s %s %s",
			inst, netName(c, 0), netName(c, 1), netName(c, 2), opampSubcktName)}, nil

	case device.Diode:
		model := modelFor(c, modelsUsed)
		return []string{fmt.Sprintf("%s %s %s %s",
			c.ID, netName(c, 0), netName(c, 1), model)}, nil

	case device.BJT:
		model := modelFor(c, modelsUsed)
		return []string{fmt.Sprintf("%s %s %s %s %s",
			c.ID, netName(c, 0), netName(c, 1), netName(c, 2), model)}, nil

	case device.MOSFET:
		// Bulk is tied to source.
		model := modelFor(c, modelsUsed)
		src := netName(c, 2)
		return []string{fmt.Sprintf("%s %s %s %s %s %s",
			c.ID, netName(c, 0), netName(c, 1), src, src, model)}, nil

	default:
		return nil, []string{fmt.Sprintf("skipping %s: unknown component type %v", c.ID, c.Type)}
	}
}

// senseName builds the synthetic sensing source name, stepping around
// any user-chosen ID it would collide with.
func senseName(id string, ids map[string]bool) string {
	name := "Vsense_" + id
	for ids[name] {
		name += "x"
	}
	return name
}

// modelFor picks the semiconductor model: the component value when it
// is a bare model identifier, else the built-in default for the
// family.
func modelFor(c device.Component, modelsUsed map[device.Type]bool) string {
	if c.Value != "" && modelNameRe.MatchString(c.Value) {
		return c.Value
	}
	modelsUsed[c.Type] = true
	return defaultModels[c.Type].name
}

// measurementLine passes a user measurement through verbatim, prefixing
// the directive keyword when it is missing.
func measurementLine(m string) string {
	trimmed := strings.TrimSpace(m)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, ".meas") {
		return trimmed
	}
	return ".meas " + trimmed
}

// WithOptions returns the netlist with extra directive lines inserted
// before the terminating .end, used to re-run with relaxed tolerances.
func WithOptions(netlist string, options []string) string {
	if len(options) == 0 {
		return netlist
	}
	lines := strings.Split(strings.TrimRight(netlist, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(strings.ToLower(lines[i])) == ".end" {
			out := make([]string, 0, len(lines)+len(options))
			out = append(out, lines[:i]...)
			out = append(out, options...)
			out = append(out, lines[i:]...)
			return strings.Join(out, "\n") + "\n"
		}
	}
	return strings.Join(append(lines, options...), "\n") + "\n"
}
