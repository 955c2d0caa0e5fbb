// Package wizard implements the interactive component builder behind
// rudr init.
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/r4b3rt/rudr/pkg/schematic"
)

// Result holds the user's choices from the init wizard.
type Result struct {
	Name         string
	Image        string
	WorkloadType string
	Port         string
	Protocol     schematic.PortProtocol
}

// RunWizard runs the interactive component builder.
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{
		// Defaults
		WorkloadType: schematic.DefaultWorkloadType,
		Protocol:     schematic.ProtocolTCP,
	}

	// Build the form
	form := huh.NewForm(
		// Container identity
		huh.NewGroup(
			huh.NewInput().
				Title("Container name").
				Description("A unique name for the component's container (DNS-safe, lowercase)").
				Placeholder("server").
				Value(&result.Name).
				Validate(validateContainerName),

			huh.NewInput().
				Title("Image").
				Description("The OCI image reference the container runs").
				Placeholder("nginx:latest").
				Value(&result.Image).
				Validate(validateImage),
		),

		// Workload type selection
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Workload type").
				Description("The runtime contract for this component").
				Options(
					huh.NewOption("Singleton (one long-running instance)", coreWorkloadType("Singleton")),
					huh.NewOption("ReplicatedService (scalable service)", coreWorkloadType("ReplicatedService")),
					huh.NewOption("Task (run to completion)", coreWorkloadType("Task")),
				).
				Value(&result.WorkloadType),
		),

		// Optional port
		huh.NewGroup(
			huh.NewInput().
				Title("Port (optional)").
				Description("A container port to expose. Leave empty to skip.").
				Placeholder("80").
				Value(&result.Port).
				Validate(validatePort),

			huh.NewSelect[schematic.PortProtocol]().
				Title("Protocol").
				Options(
					huh.NewOption("TCP", schematic.ProtocolTCP),
					huh.NewOption("UDP", schematic.ProtocolUDP),
					huh.NewOption("SCTP", schematic.ProtocolSCTP),
				).
				Value(&result.Protocol),
		),
	)

	// Run the form
	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// coreWorkloadType builds a core.hydra.io/v1alpha1 workload identifier.
func coreWorkloadType(kind string) string {
	return schematic.NewGroupVersionKind("core.hydra.io", "v1alpha1", kind).String()
}

// ToComponent converts the wizard result to a component schematic.
func (r *Result) ToComponent() *schematic.Component {
	c := schematic.DefaultComponent()
	c.WorkloadType = r.WorkloadType

	ctr := schematic.Container{
		Name:      r.Name,
		Image:     r.Image,
		Resources: schematic.DefaultResources(),
		Env:       []schematic.Env{},
		Ports:     []schematic.Port{},
	}
	if port, err := strconv.Atoi(r.Port); err == nil {
		ctr.Ports = append(ctr.Ports, schematic.Port{
			Name:          strings.ToLower(string(r.Protocol)),
			ContainerPort: int32(port),
			Protocol:      r.Protocol,
		})
	}

	c.Containers = []schematic.Container{ctr}
	return &c
}

// validateContainerName validates the container name.
func validateContainerName(s string) error {
	if s == "" {
		return fmt.Errorf("container name is required")
	}
	if len(s) > 63 {
		return fmt.Errorf("container name must be 63 characters or less")
	}
	// Basic DNS-safe validation
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return fmt.Errorf("container name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return fmt.Errorf("container name cannot start or end with a hyphen")
	}
	return nil
}

// validateImage validates the image reference.
func validateImage(s string) error {
	if s == "" {
		return fmt.Errorf("image is required")
	}
	return nil
}

// validatePort validates the optional port.
func validatePort(s string) error {
	if s == "" {
		return nil // Optional
	}
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
