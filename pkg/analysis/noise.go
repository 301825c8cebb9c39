package analysis

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

var (
	noiseTotalOutRe = regexp.MustCompile(`(?i)onoise[_\s]*total\s*[:=]\s*(` + numberPattern + `)`)
	noiseTotalInRe  = regexp.MustCompile(`(?i)inoise[_\s]*total\s*[:=]\s*(` + numberPattern + `)`)
)

// ParseNoise reads a noise report: integrated totals when printed,
// plus the spectrum table whose header names an onoise column. Returns
// nil when neither totals nor a spectrum row appear.
func ParseNoise(text string) *NoiseResult {
	res := &NoiseResult{}

	if m := noiseTotalOutRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			res.TotalOutput = &v
		}
	}
	if m := noiseTotalInRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			res.TotalInput = &v
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	freqCol, outCol, inCol := -1, -1, -1
	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		for i, f := range fields {
			lower := strings.ToLower(f)
			switch {
			case strings.Contains(lower, "freq"):
				freqCol = i
			case strings.Contains(lower, "onoise"):
				outCol = i
			case strings.Contains(lower, "inoise"):
				inCol = i
			}
		}
		if freqCol >= 0 && outCol >= 0 {
			break
		}
		freqCol, outCol, inCol = -1, -1, -1
	}

	if freqCol >= 0 && outCol >= 0 {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || isSeparator(line) {
				if len(res.Frequencies) > 0 {
					break
				}
				continue
			}
			row, ok := numericRow(strings.Fields(line))
			if !ok {
				if len(res.Frequencies) > 0 {
					break
				}
				continue
			}
			if freqCol >= len(row) || outCol >= len(row) {
				continue
			}
			res.Frequencies = append(res.Frequencies, row[freqCol])
			res.OutputNoise = append(res.OutputNoise, row[outCol])
			if inCol >= 0 && inCol < len(row) {
				res.InputNoise = append(res.InputNoise, row[inCol])
			}
		}
	}

	if len(res.Frequencies) == 0 && res.TotalOutput == nil && res.TotalInput == nil {
		return nil
	}
	return res
}
