package analysis

import (
	"bufio"
	"regexp"
	"strings"
)

// Column naming conventions for AC output, tried in order per column:
// vm()/vp() wrappers first, then _mag/_phase suffixes, then a bare
// v() column which reads as magnitude-only.
var (
	acMagColRe   = regexp.MustCompile(`(?i)^vm\((.+)\)$`)
	acPhaseColRe = regexp.MustCompile(`(?i)^vp\((.+)\)$`)
	acMagSufRe   = regexp.MustCompile(`(?i)^(.+)_mag$`)
	acPhaseSufRe = regexp.MustCompile(`(?i)^(.+)_phase$`)
	acBareColRe  = regexp.MustCompile(`(?i)^v\((.+)\)$`)
)

// ParseAC reads an AC sweep table: the header row names a frequency
// column plus per-node magnitude/phase columns; numeric rows follow.
// Series are aligned by index with Frequencies. Returns nil when the
// table never appears.
func ParseAC(text string) *ACResult {
	scanner := bufio.NewScanner(strings.NewReader(text))

	var headers []string
	freqCol := -1
	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		for i, f := range fields {
			if strings.Contains(strings.ToLower(f), "freq") {
				headers = fields
				freqCol = i
				break
			}
		}
		if headers != nil {
			break
		}
	}
	if headers == nil {
		return nil
	}

	type colTarget struct {
		node  string
		phase bool
	}
	targets := make(map[int]colTarget)
	for i, h := range headers {
		if i == freqCol {
			continue
		}
		switch {
		case acMagColRe.MatchString(h):
			targets[i] = colTarget{node: strings.ToLower(acMagColRe.FindStringSubmatch(h)[1])}
		case acPhaseColRe.MatchString(h):
			targets[i] = colTarget{node: strings.ToLower(acPhaseColRe.FindStringSubmatch(h)[1]), phase: true}
		case acMagSufRe.MatchString(h):
			targets[i] = colTarget{node: strings.ToLower(acMagSufRe.FindStringSubmatch(h)[1])}
		case acPhaseSufRe.MatchString(h):
			targets[i] = colTarget{node: strings.ToLower(acPhaseSufRe.FindStringSubmatch(h)[1]), phase: true}
		case acBareColRe.MatchString(h):
			targets[i] = colTarget{node: strings.ToLower(acBareColRe.FindStringSubmatch(h)[1])}
		}
	}

	res := &ACResult{
		Magnitude: make(map[string][]float64),
		Phase:     make(map[string][]float64),
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isSeparator(line) {
			if len(res.Frequencies) > 0 {
				break
			}
			continue
		}
		row, ok := numericRow(strings.Fields(line))
		if !ok || freqCol >= len(row) {
			if len(res.Frequencies) > 0 {
				break
			}
			continue
		}

		res.Frequencies = append(res.Frequencies, row[freqCol])
		for i, target := range targets {
			if i >= len(row) {
				continue
			}
			if target.phase {
				res.Phase[target.node] = append(res.Phase[target.node], row[i])
			} else {
				res.Magnitude[target.node] = append(res.Magnitude[target.node], row[i])
			}
		}
	}

	if len(res.Frequencies) == 0 {
		return nil
	}
	return res
}
