package commands

import (
	"github.com/spf13/cobra"

	"github.com/r4b3rt/rudr/cmd/rudr/handlers"
)

// Validate returns the command for checking a component schematic.
//
// This command parses the schematic, applies defaults, and runs the full
// set of structural checks: container names, image references, ports,
// resource quantities, parameter declarations, and probe definitions.
//
// Flags:
//
//	--file, -f: Path to the component schematic (required)
func Validate() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a component schematic",
		Long: `Validate a component schematic file.

The file may contain either a bare component spec or a full
ComponentSchematic manifest with apiVersion, kind, and metadata.

Examples:
  # Validate a schematic written by rudr init
  rudr validate -f component.yaml

  # Validate a full manifest
  rudr validate -f manifests/frontend.yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(filePath)
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the component schematic")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
