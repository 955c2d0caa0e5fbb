package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"sigs.k8s.io/yaml"

	"github.com/r4b3rt/rudr/internal/util/ptr"
	"github.com/r4b3rt/rudr/internal/wizard"
	"github.com/r4b3rt/rudr/pkg/schematic"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive component builder.
	runWizard = wizard.RunWizard

	// writeFile writes data to a file (for testing injection).
	writeFile = os.WriteFile

	// stdinIsTerminal reports whether stdin is attached to a terminal.
	stdinIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

// Init creates a component schematic and writes it to a file.
//
// With a terminal attached it runs the interactive wizard; otherwise it
// writes an example schematic so the command stays usable in scripts.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	var component *schematic.Component
	if stdinIsTerminal() {
		printWelcome()

		result, err := runWizard(ctx)
		if err != nil {
			return fmt.Errorf("wizard canceled: %w", err)
		}
		component = result.ToComponent()
	} else {
		fmt.Printf("No terminal detected, writing an example schematic.\n")
		component = exampleComponent()
	}

	data, err := yaml.Marshal(component)
	if err != nil {
		return fmt.Errorf("failed to marshal component: %w", err)
	}
	if err := writeFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write component: %w", err)
	}

	printInitSuccess(outputPath, component)

	return nil
}

// exampleComponent is the schematic written when no terminal is
// available for the wizard: a single nginx container with an http port,
// a readiness probe, and a parameterized environment variable.
func exampleComponent() *schematic.Component {
	readiness := schematic.DefaultHealthProbe()
	readiness.HTTPGet = &schematic.HTTPGet{
		Path:        "/",
		Port:        80,
		HTTPHeaders: []schematic.HTTPHeader{},
	}

	c := schematic.DefaultComponent()
	c.WorkloadType = "core.hydra.io/v1alpha1.ReplicatedService"
	c.Parameters = []schematic.Parameter{
		{
			Name:          "message",
			Description:   ptr.String("The message served by the example component"),
			ParameterType: schematic.ParameterTypeString,
			Default:       &apiextensionsv1.JSON{Raw: []byte(`"Hello World"`)},
		},
	}
	c.Containers = []schematic.Container{
		{
			Name:      "server",
			Image:     "nginx:latest",
			Resources: schematic.DefaultResources(),
			Env: []schematic.Env{
				{Name: "MESSAGE", FromParam: ptr.String("message")},
			},
			Ports: []schematic.Port{
				{Name: "http", ContainerPort: 80, Protocol: schematic.ProtocolTCP},
			},
			ReadinessProbe: &readiness,
		},
	}
	return &c
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("rudr - Hydra component schematics")
	fmt.Println("=================================")
	fmt.Println()
	fmt.Println("This wizard creates a component schematic with sensible defaults.")
	fmt.Println("Just answer a few simple questions.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, c *schematic.Component) {
	fmt.Println()
	fmt.Println("Component saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Component Summary")
	fmt.Println("-----------------")
	fmt.Printf("  Workload:   %s\n", c.WorkloadType)
	for i := range c.Containers {
		ctr := &c.Containers[i]
		fmt.Printf("  Container:  %s (%s)\n", ctr.Name, ctr.Image)
		for _, port := range ctr.Ports {
			fmt.Printf("  Port:       %d/%s\n", port.ContainerPort, port.Protocol)
		}
	}
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Check the schematic:")
	fmt.Printf("     rudr validate -f %s\n", outputPath)
	fmt.Println()
	fmt.Println("  3. See the pod it projects to:")
	fmt.Printf("     rudr render -f %s\n", outputPath)
	fmt.Println()
}
