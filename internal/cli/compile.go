package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/netlist"
	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/schematic"
)

// newCompileCmd creates the compile command: load a TOML schematic,
// build the node graph, and emit netlist text to stdout or -o.
func newCompileCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compile [schematic.toml]",
		Short: "Compile a schematic to simulator netlist text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the netlist to a file instead of stdout")
	return cmd
}

func runCompile(cmd *cobra.Command, path, output string) error {
	logger := loggerFromContext(cmd.Context())

	ckt, err := schematic.Load(path)
	if err != nil {
		return err
	}
	nodes, wires := ckt.Graph.Stats()
	logger.Debugf("Loaded %s: %d components, %d nodes, %d wires",
		path, len(ckt.Components), nodes, wires)

	text, warnings := netlist.Generate(netlist.Input{
		Title:        ckt.Title,
		Components:   ckt.Components,
		Nodes:        ckt.Graph.TerminalMap(),
		Analysis:     ckt.Analysis,
		Measurements: ckt.Measurements,
	})
	for _, w := range warnings {
		logger.Warn(w)
	}

	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing netlist: %w", err)
	}
	logger.Infof("Wrote %s", output)
	return nil
}
