package analysis

import (
	"bufio"
	"strconv"
	"strings"
)

// ParseSweep reads a sweep table out of simulator text. The header row
// is the first line naming sweepVar (case-insensitive substring match
// against a column); whitespace-delimited numeric rows follow until a
// non-numeric line ends the block. Separator rules between header and
// data are skipped. Returns nil when no header or no data row exists.
func ParseSweep(text, sweepVar string) *SweepResult {
	want := strings.ToLower(sweepVar)

	scanner := bufio.NewScanner(strings.NewReader(text))
	var headers []string
	var rows [][]float64
	inBlock := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if !inBlock {
			fields := strings.Fields(line)
			for _, f := range fields {
				if strings.Contains(strings.ToLower(f), want) {
					headers = fields
					inBlock = true
					break
				}
			}
			continue
		}

		if line == "" || isSeparator(line) {
			if len(rows) > 0 {
				break
			}
			continue
		}

		row, ok := numericRow(strings.Fields(line))
		if !ok {
			if len(rows) > 0 {
				break
			}
			// Junk between header and data; keep scanning.
			continue
		}
		rows = append(rows, row)
	}

	if headers == nil || len(rows) == 0 {
		return nil
	}
	return &SweepResult{Headers: headers, Rows: rows}
}

// ParseDCSweep parses a DC source sweep; the simulator names the
// swept column "v-sweep" regardless of the source name.
func ParseDCSweep(text string) *SweepResult {
	return ParseSweep(text, "v-sweep")
}

// ParseTempSweep parses a temperature sweep table.
func ParseTempSweep(text string) *SweepResult {
	if res := ParseSweep(text, "temp-sweep"); res != nil {
		return res
	}
	return ParseSweep(text, "temp")
}

func isSeparator(line string) bool {
	for _, r := range line {
		if r != '-' && r != '=' && r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

func numericRow(fields []string) ([]float64, bool) {
	if len(fields) == 0 {
		return nil, false
	}
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		row[i] = v
	}
	return row, true
}
