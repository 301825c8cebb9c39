package analysis

import (
	"bufio"
	"os"
	"strings"
)

// ParseTransientFile reads the dumped vector file written during a
// transient run. Transient data never rides the main text stream; it
// is large and the simulator writes it separately. Returns nil when
// the file is missing, empty, or header-only.
func ParseTransientFile(path string) *TransientResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return ParseTransient(string(data))
}

// ParseTransient parses vector-file content: a header row naming each
// column, then one whitespace-delimited numeric row per time point.
// Column names containing characters illegal as result keys are
// sanitized ("#" becomes "_") before being exposed.
func ParseTransient(text string) *TransientResult {
	scanner := bufio.NewScanner(strings.NewReader(text))
	// Vector rows can be wide; grow the line buffer past the default.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var columns []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, numeric := numericRow(strings.Fields(line)); numeric {
			// Headerless data makes no sense here; treat as no data.
			return nil
		}
		fields := strings.Fields(line)
		columns = make([]string, len(fields))
		for i, f := range fields {
			columns[i] = sanitizeKey(f)
		}
		break
	}
	if columns == nil {
		return nil
	}

	var points []map[string]float64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row, ok := numericRow(strings.Fields(line))
		if !ok {
			break
		}
		point := make(map[string]float64, len(columns))
		for i, v := range row {
			if i >= len(columns) {
				break
			}
			point[columns[i]] = v
		}
		points = append(points, point)
	}

	if len(points) == 0 {
		return nil
	}
	return &TransientResult{Columns: columns, Points: points}
}

func sanitizeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "#", "_"))
}
