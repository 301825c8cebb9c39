package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/convergence"
)

// newExplainCmd creates the explain command: classify simulator error
// text and print a plain-language diagnosis with suggested fixes.
func newExplainCmd() *cobra.Command {
	var relaxed bool

	cmd := &cobra.Command{
		Use:   "explain [file]",
		Short: "Explain a simulator failure from its error output",
		Long: `Explain reads simulator stderr/stdout text from a file (or stdin when
no file is given), classifies the failure, and prints likely causes and
suggested fixes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readExplainInput(cmd, args)
			if err != nil {
				return err
			}
			category := convergence.Classify(text)
			loggerFromContext(cmd.Context()).Debugf("Classified as %s", category)

			diagnosis := convergence.Diagnose(category)
			fmt.Fprint(cmd.OutOrStdout(), convergence.Explain(diagnosis, relaxed))
			return nil
		},
	}

	cmd.Flags().BoolVar(&relaxed, "relaxed", false, "note that the run passed only after relaxing tolerances")
	return cmd
}

func readExplainInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading simulator output: %w", err)
		}
		return string(raw), nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(raw), nil
}
