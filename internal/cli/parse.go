package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/analysis"
	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/util"
)

// newParseCmd creates the parse command: read raw simulator output and
// print it back as a structured report.
func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [analysis] [file]",
		Short: "Parse raw simulator output for the given analysis type",
		Long: `Parse reads a simulator output file and extracts the results for the
named analysis (op, dc, ac, tran, temp, noise, sens, pz, tf).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], args[1])
		},
	}
	return cmd
}

func runParse(cmd *cobra.Command, typeName, path string) error {
	at, err := analysis.ParseType(typeName)
	if err != nil {
		return err
	}

	report, err := parseReport(at, path)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report)
	return nil
}

// parseReport dispatches to the parser for the analysis type and
// renders the result as text. Transient output is a dumped vector file
// and is read directly; everything else is parsed from console text.
func parseReport(at analysis.Type, path string) (string, error) {
	if at == analysis.Transient {
		res := analysis.ParseTransientFile(path)
		if res == nil {
			return "", fmt.Errorf("no transient data recognized in %s", path)
		}
		return renderTransient(res), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading simulator output: %w", err)
	}
	text := string(raw)

	switch at {
	case analysis.OP:
		if res := analysis.ParseOP(text); res != nil {
			return renderOP(res), nil
		}
	case analysis.DCSweep:
		if res := analysis.ParseDCSweep(text); res != nil {
			return renderSweep(res), nil
		}
	case analysis.TempSweep:
		if res := analysis.ParseTempSweep(text); res != nil {
			return renderSweep(res), nil
		}
	case analysis.ACSweep:
		if res := analysis.ParseAC(text); res != nil {
			return renderAC(res), nil
		}
	case analysis.Noise:
		if res := analysis.ParseNoise(text); res != nil {
			return renderNoise(res), nil
		}
	case analysis.Sensitivity:
		if res := analysis.ParseSensitivity(text); res != nil {
			return renderSensitivity(res), nil
		}
	case analysis.PoleZero:
		if res := analysis.ParsePoleZero(text); res != nil {
			return renderPoleZero(res), nil
		}
	case analysis.TransferFunc:
		if res := analysis.ParseTransferFunc(text); res != nil {
			return renderTF(res), nil
		}
	default:
		return "", fmt.Errorf("no parser for analysis type %s", at)
	}
	return "", fmt.Errorf("no %s results recognized in %s", at, path)
}

func renderOP(res *analysis.OPResult) string {
	var b strings.Builder
	b.WriteString("Operating point:\n")
	for _, node := range sortedKeys(res.NodeVoltages) {
		fmt.Fprintf(&b, "  v(%s) = %s\n", node, util.FormatSI(res.NodeVoltages[node], "V"))
	}
	for _, dev := range sortedKeys(res.BranchCurrents) {
		fmt.Fprintf(&b, "  i(%s) = %s\n", dev, util.FormatSI(res.BranchCurrents[dev], "A"))
	}
	return b.String()
}

func renderSweep(res *analysis.SweepResult) string {
	var b strings.Builder
	b.WriteString(strings.Join(res.Headers, "\t"))
	b.WriteByte('\n')
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprintf("%.6g", v)
		}
		b.WriteString(strings.Join(cells, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderAC(res *analysis.ACResult) string {
	var b strings.Builder
	for _, node := range sortedKeys(res.Magnitude) {
		fmt.Fprintf(&b, "%s:\n", node)
		mags := res.Magnitude[node]
		phases := res.Phase[node]
		for i, f := range res.Frequencies {
			if i >= len(mags) {
				break
			}
			line := fmt.Sprintf("  %s  %s", util.FormatFrequency(f), util.FormatMagnitude(mags[i]))
			if i < len(phases) {
				line += "  " + util.FormatPhase(phases[i])
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderTransient(res *analysis.TransientResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transient: %d points, columns: %s\n",
		len(res.Points), strings.Join(res.Columns, ", "))
	if len(res.Points) > 0 {
		first, last := res.Points[0], res.Points[len(res.Points)-1]
		fmt.Fprintf(&b, "  t = %s .. %s\n",
			util.FormatSI(first["time"], "s"), util.FormatSI(last["time"], "s"))
	}
	return b.String()
}

func renderNoise(res *analysis.NoiseResult) string {
	var b strings.Builder
	if res.TotalOutput != nil {
		fmt.Fprintf(&b, "Total output noise: %s\n", util.FormatSI(*res.TotalOutput, "V"))
	}
	if res.TotalInput != nil {
		fmt.Fprintf(&b, "Total input noise: %s\n", util.FormatSI(*res.TotalInput, "V"))
	}
	for i, f := range res.Frequencies {
		line := fmt.Sprintf("  %s  out=%.3e", util.FormatFrequency(f), res.OutputNoise[i])
		if i < len(res.InputNoise) {
			line += fmt.Sprintf("  in=%.3e", res.InputNoise[i])
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func renderSensitivity(res *analysis.SensitivityResult) string {
	var b strings.Builder
	b.WriteString("Sensitivities:\n")
	for _, e := range res.Entries {
		fmt.Fprintf(&b, "  %-12s value=%.6g  sens=%.6g  norm=%.6g\n",
			e.Element, e.Value, e.Sensitivity, e.NormalizedSensitivity)
	}
	return b.String()
}

func renderPoleZero(res *analysis.PoleZeroResult) string {
	var b strings.Builder
	writePoints := func(label string, pts []analysis.PZPoint) {
		fmt.Fprintf(&b, "%s:\n", label)
		for _, p := range pts {
			line := fmt.Sprintf("  %.6g %+.6gj  (%s)", p.Real, p.Imag, util.FormatFrequency(p.FrequencyHz))
			if p.Unstable {
				line += "  UNSTABLE"
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	writePoints("Poles", res.Poles)
	writePoints("Zeros", res.Zeros)
	return b.String()
}

func renderTF(res *analysis.TFResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transfer function: %.6g\n", res.Gain)
	if res.OutputImpedance != nil {
		fmt.Fprintf(&b, "Output impedance: %s\n", util.FormatSI(*res.OutputImpedance, "Ohm"))
	}
	if res.InputImpedance != nil {
		fmt.Fprintf(&b, "Input impedance: %s\n", util.FormatSI(*res.InputImpedance, "Ohm"))
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
