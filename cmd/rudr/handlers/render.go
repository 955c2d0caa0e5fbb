package handlers

import (
	"encoding/json"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"

	"github.com/r4b3rt/rudr/pkg/workload"
)

// Render validates a component schematic, resolves its parameters, and
// prints the projected pod spec to stdout.
func Render(filePath, valuesPath, format string) error {
	component, _, err := loadComponent(filePath)
	if err != nil {
		return err
	}

	if err := component.Validate(); err != nil {
		return fmt.Errorf("component validation failed: %w", err)
	}

	values, err := loadValues(valuesPath)
	if err != nil {
		return err
	}

	resolved, err := component.ResolveParameters(values)
	if err != nil {
		return fmt.Errorf("parameter resolution failed: %w", err)
	}

	out, err := marshalPodSpec(workload.PodSpec(resolved), format)
	if err != nil {
		return err
	}
	fmt.Print(string(out))

	return nil
}

// marshalPodSpec encodes a pod spec in the requested output format.
func marshalPodSpec(spec corev1.PodSpec, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(spec)
	case "json":
		out, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q, expected yaml or json", format)
	}
}
