// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/r4b3rt/rudr/api/v1alpha1"
	"github.com/r4b3rt/rudr/pkg/schematic"
)

// Factory function variables for loading - can be replaced in tests.
var (
	// readFile reads a file (for testing injection).
	readFile = os.ReadFile
)

// documentProbe holds just enough of a document to detect a manifest
// envelope.
type documentProbe struct {
	APIVersion string `json:"apiVersion"`
	Kind       string `json:"kind"`
}

// loadComponent reads a schematic file and returns the component it
// describes plus the manifest name, if the file was a full
// ComponentSchematic manifest rather than a bare spec.
func loadComponent(path string) (*schematic.Component, string, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read schematic file %s: %w", path, err)
	}

	var probe documentProbe
	if err := yaml.Unmarshal(data, &probe); err == nil && probe.Kind != "" {
		if probe.Kind != "ComponentSchematic" {
			return nil, "", fmt.Errorf("unsupported document kind %q, expected ComponentSchematic", probe.Kind)
		}
		if probe.APIVersion != "" && probe.APIVersion != v1alpha1.GroupVersion.String() {
			return nil, "", fmt.Errorf("unsupported apiVersion %q, expected %s", probe.APIVersion, v1alpha1.GroupVersion)
		}
		var manifest v1alpha1.ComponentSchematic
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, "", fmt.Errorf("invalid component manifest: %w", err)
		}
		return &manifest.Spec, manifest.Name, nil
	}

	component, err := schematic.Parse(data)
	if err != nil {
		return nil, "", err
	}
	return component, "", nil
}

// loadValues reads a YAML or JSON file of parameter values. An empty
// path yields an empty value set.
func loadValues(path string) (schematic.ParameterValues, error) {
	if path == "" {
		return schematic.ParameterValues{}, nil
	}
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file %s: %w", path, err)
	}
	values := schematic.ParameterValues{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("invalid values file %s: %w", path, err)
	}
	return values, nil
}
