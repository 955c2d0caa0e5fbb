package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/r4b3rt/rudr/cmd/rudr/handlers"
)

// Submit returns the command for running a component on a cluster.
//
// This command renders the component's pod spec and creates the pod
// through the Kubernetes API, optionally waiting for it to reach the
// Running phase.
//
// Flags:
//
//	--file, -f: Path to the component schematic (required)
//	--values: Path to a YAML or JSON file with parameter values
//	--kubeconfig: Path to the kubeconfig file (default: $KUBECONFIG or ~/.kube/config)
//	--namespace, -n: Namespace to create the pod in (default "default")
//	--name: Name for the created pod (default: schematic metadata or first container)
//	--wait: Block until the pod is running
//	--timeout: How long to wait for the pod (default 2m)
func Submit() *cobra.Command {
	var opts handlers.SubmitOptions

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a component to a Kubernetes cluster",
		Long: `Submit a component schematic to a Kubernetes cluster as a pod.

The schematic is validated and its parameters resolved exactly as in
'rudr render'; the resulting pod spec is then created in the target
namespace.

Examples:
  # Create the pod and return immediately
  rudr submit -f component.yaml

  # Create the pod in a namespace and wait for it to start
  rudr submit -f component.yaml -n staging --wait

  # Override the pod name and supply parameter values
  rudr submit -f component.yaml --name canary --values values.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Submit(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.FilePath, "file", "f", "", "Path to the component schematic")
	cmd.Flags().StringVar(&opts.ValuesPath, "values", "", "Path to a parameter values file")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	cmd.Flags().StringVarP(&opts.Namespace, "namespace", "n", "default", "Namespace to create the pod in")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Name for the created pod")
	cmd.Flags().BoolVar(&opts.Wait, "wait", false, "Block until the pod is running")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 2*time.Minute, "How long to wait for the pod")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
