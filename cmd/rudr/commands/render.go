package commands

import (
	"github.com/spf13/cobra"

	"github.com/r4b3rt/rudr/cmd/rudr/handlers"
)

// Render returns the command for projecting a component onto a pod spec.
//
// This command parses and validates the schematic, resolves its parameters
// against an optional values file, and prints the resulting Kubernetes
// pod spec to stdout.
//
// Flags:
//
//	--file, -f: Path to the component schematic (required)
//	--values: Path to a YAML or JSON file with parameter values
//	--output, -o: Output format, yaml or json (default "yaml")
func Render() *cobra.Command {
	var (
		filePath   string
		valuesPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a component as a Kubernetes pod spec",
		Long: `Render the workload projection of a component schematic.

Parameters declared by the component are resolved before rendering:
values from the --values file take precedence, then declared defaults.
A required parameter with neither fails the render.

Examples:
  # Print the pod spec as YAML
  rudr render -f component.yaml

  # Supply parameter values and emit JSON
  rudr render -f component.yaml --values values.yaml -o json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Render(filePath, valuesPath, format)
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the component schematic")
	cmd.Flags().StringVar(&valuesPath, "values", "", "Path to a parameter values file")
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "Output format (yaml or json)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
