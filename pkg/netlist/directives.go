package netlist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/analysis"
	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/device"
)

// directiveBuilder renders the analysis dot-directive(s) for one
// analysis type, substituting documented defaults for missing keys.
type directiveBuilder func(spec analysis.Spec, comps []device.Component) (lines []string, warnings []string)

// Builders keyed by analysis type. An analysis type missing from this
// table compiles to no directive at all; Generate reports that as a
// warning instead of failing, since saved files from newer editors may
// carry types this build does not know.
var directiveBuilders = map[analysis.Type]directiveBuilder{
	analysis.OP: func(analysis.Spec, []device.Component) ([]string, []string) {
		return []string{".op"}, nil
	},

	analysis.DCSweep: func(spec analysis.Spec, comps []device.Component) ([]string, []string) {
		source := spec.Param("source", firstVoltageSource(comps))
		if source == "" {
			return nil, []string{"dc sweep has no source to sweep; directive omitted"}
		}
		return []string{fmt.Sprintf(".dc %s %s %s %s",
			source,
			spec.Param("min", "0"),
			spec.Param("max", "5"),
			spec.Param("step", "0.1"),
		)}, nil
	},

	analysis.ACSweep: func(spec analysis.Spec, _ []device.Component) ([]string, []string) {
		return []string{fmt.Sprintf(".ac %s %s %s %s",
			spec.Param("sweep_type", "dec"),
			spec.Param("points", "100"),
			spec.Param("fStart", spec.Param("fstart", "1")),
			spec.Param("fStop", spec.Param("fstop", "1e6")),
		)}, nil
	},

	analysis.Transient: func(spec analysis.Spec, _ []device.Component) ([]string, []string) {
		line := fmt.Sprintf(".tran %s %s",
			spec.Param("tstep", "1u"),
			spec.Param("tstop", "1m"),
		)
		if start := spec.Param("tstart", ""); start != "" {
			line += " " + start
			if max := spec.Param("tmax", ""); max != "" {
				line += " " + max
			}
		}
		if uic := strings.ToLower(spec.Param("uic", "")); uic == "1" || uic == "true" || uic == "yes" {
			line += " uic"
		}
		return []string{line}, nil
	},

	// Temperature sweeps compile to two lines: the operating-point
	// directive plus the temperature step.
	analysis.TempSweep: func(spec analysis.Spec, _ []device.Component) ([]string, []string) {
		return []string{
			".op",
			fmt.Sprintf(".step temp %s %s %s",
				spec.Param("start", "0"),
				spec.Param("stop", "100"),
				spec.Param("step", "10"),
			),
		}, nil
	},

	analysis.Noise: func(spec analysis.Spec, comps []device.Component) ([]string, []string) {
		source := spec.Param("source", firstVoltageSource(comps))
		if source == "" {
			return nil, []string{"noise analysis has no input source; directive omitted"}
		}
		return []string{fmt.Sprintf(".noise v(%s) %s %s %s %s %s",
			spec.Param("output", "out"),
			source,
			spec.Param("sweep_type", "dec"),
			spec.Param("points", "10"),
			spec.Param("fstart", "1"),
			spec.Param("fstop", "1e6"),
		)}, nil
	},

	analysis.Sensitivity: func(spec analysis.Spec, _ []device.Component) ([]string, []string) {
		return []string{fmt.Sprintf(".sens v(%s)", spec.Param("output", "out"))}, nil
	},

	analysis.PoleZero: func(spec analysis.Spec, _ []device.Component) ([]string, []string) {
		return []string{fmt.Sprintf(".pz %s 0 %s 0 %s pz",
			spec.Param("input", "in"),
			spec.Param("output", "out"),
			spec.Param("transfer", "vol"),
		)}, nil
	},

	analysis.TransferFunc: func(spec analysis.Spec, comps []device.Component) ([]string, []string) {
		source := spec.Param("source", firstVoltageSource(comps))
		if source == "" {
			return nil, []string{"transfer function has no input source; directive omitted"}
		}
		return []string{fmt.Sprintf(".tf v(%s) %s", spec.Param("output", "out"), source)}, nil
	},
}

func buildDirectives(in Input, comps []device.Component) ([]string, []string) {
	builder, ok := directiveBuilders[in.Analysis.Type]
	if !ok {
		return nil, []string{fmt.Sprintf("no directive builder for analysis type %v; directive omitted", in.Analysis.Type)}
	}
	return builder(in.Analysis, comps)
}

// firstVoltageSource returns the lowest-ID independent voltage source,
// the usual default for sweep and transfer directives.
func firstVoltageSource(comps []device.Component) string {
	var candidates []string
	for _, c := range comps {
		switch c.Type {
		case device.VoltageSource:
			candidates = append(candidates, c.ID)
		case device.WaveformSource:
			if strings.HasPrefix(strings.ToUpper(c.ID), "V") {
				candidates = append(candidates, c.ID)
			}
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.Strings(candidates)
	return candidates[0]
}
