package convergence

import (
	"fmt"
	"sort"
	"strings"
)

// Relaxed-tolerance defaults applied on retry: wider relative and
// absolute tolerances plus higher iteration limits. Held as an ordered
// list so the rendered line is stable.
var defaultOptions = []struct{ key, value string }{
	{"reltol", "0.01"},
	{"abstol", "1e-9"},
	{"itl1", "300"},
	{"itl4", "100"},
	{"gmin", "1e-9"},
}

// FormatOptionsLines renders a .options directive from a key/value
// map. A nil map means "use the relaxed defaults"; an explicitly empty
// map means "no options at all" and yields no lines.
func FormatOptionsLines(options map[string]string) []string {
	if options == nil {
		parts := make([]string, 0, len(defaultOptions)+1)
		parts = append(parts, ".options")
		for _, o := range defaultOptions {
			parts = append(parts, fmt.Sprintf("%s=%s", o.key, o.value))
		}
		return []string{strings.Join(parts, " ")}
	}
	if len(options) == 0 {
		return nil
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	parts = append(parts, ".options")
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, options[k]))
	}
	return []string{strings.Join(parts, " ")}
}
