package analysis

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches a decimal or scientific float.
const numberPattern = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

type opKind int

const (
	opVoltage opKind = iota
	opCurrent
	opTableRow
)

// Operating-point layouts the simulator may emit, in priority order.
// The first pattern matching a line wins, so the "name value" table
// form must come last or it would shadow the explicit v()/i() forms.
var opPatterns = []struct {
	re   *regexp.Regexp
	kind opKind
}{
	{regexp.MustCompile(`(?i)^\s*v\(([^)\s]+)\)\s*=\s*(` + numberPattern + `)\s*$`), opVoltage},
	{regexp.MustCompile(`(?i)^\s*i\(([^)\s]+)\)\s*=\s*(` + numberPattern + `)\s*$`), opCurrent},
	{regexp.MustCompile(`(?i)^\s*v\(([^)\s]+)\)\s*:\s*(` + numberPattern + `)\s*$`), opVoltage},
	{regexp.MustCompile(`(?i)^\s*i\(([^)\s]+)\)\s*:\s*(` + numberPattern + `)\s*$`), opCurrent},
	{regexp.MustCompile(`^\s*([A-Za-z][\w.]*(?:#branch)?)\s+(` + numberPattern + `)\s*$`), opTableRow},
}

// ParseOP scans operating-point output line by line, collecting node
// voltages and branch currents into separate maps keyed by lower-cased
// reference. Returns nil when no value was recognized at all.
func ParseOP(text string) *OPResult {
	res := &OPResult{
		NodeVoltages:   make(map[string]float64),
		BranchCurrents: make(map[string]float64),
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		for _, p := range opPatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			value, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				break
			}
			name := strings.ToLower(m[1])
			switch p.kind {
			case opVoltage:
				res.NodeVoltages[name] = value
			case opCurrent:
				res.BranchCurrents[name] = value
			case opTableRow:
				// Tabular print layout: branch currents show up as
				// "<device>#branch", everything else is a node voltage.
				if dev, ok := strings.CutSuffix(name, "#branch"); ok {
					res.BranchCurrents[dev] = value
				} else {
					res.NodeVoltages[name] = value
				}
			}
			break
		}
	}

	if len(res.NodeVoltages) == 0 && len(res.BranchCurrents) == 0 {
		return nil
	}
	return res
}
