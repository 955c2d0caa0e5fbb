package commands

import (
	"github.com/spf13/cobra"

	"github.com/r4b3rt/rudr/cmd/rudr/handlers"
)

// Init returns the command for interactively creating a component schematic.
//
// This command guides users through describing a single-container component
// using an interactive wizard with text inputs and single-select prompts.
// When stdin is not a terminal it writes an example schematic instead.
//
// Flags:
//
//	--output, -o: Path to output file (default "component.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a component schematic",
		Long: `Interactively create a component schematic file.

This command guides you through describing a component step by step.
It will ask about:

  - Container identity (name and OCI image)
  - Workload type (Singleton, ReplicatedService, or Task)
  - An optional exposed port and its protocol

When run without a terminal attached, an example nginx schematic is
written instead so the command stays usable in scripts.

Examples:
  # Create component.yaml in the current directory
  rudr init

  # Write the schematic to a specific path
  rudr init -o web-frontend.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "component.yaml", "Output file path")

	return cmd
}
