// Package schematic implements the Hydra component schematic model: the
// developer-facing description of a unit of deployment, its containers,
// parameters, and workload settings.
//
// Components deserialize leniently from JSON or YAML. Absent fields take
// documented defaults, unknown fields are ignored, and every collection
// may be empty, but enumerated fields reject tokens outside their domain.
// Semantic requirements beyond decoding, such as required names and
// quantity syntax, are checked by Validate.
package schematic

import (
	"encoding/json"
)

// DefaultWorkloadType is the workload type assumed when a component does
// not declare one.
const DefaultWorkloadType = "core.hydra.io/v1alpha1.Singleton"

// Component is the spec of a Hydra component schematic: the containers a
// developer ships, the parameters they expose to operators, and the
// settings passed through to the workload runtime.
//
// The Kubernetes manifest wrapper around a component lives in
// api/v1alpha1.
type Component struct {
	// WorkloadType identifies the runtime contract for this component,
	// written as a group/version.kind identifier.
	WorkloadType string `json:"workloadType"`

	// OSType is the operating system the containers require.
	OSType string `json:"osType"`

	// Arch is the CPU architecture the containers require.
	Arch string `json:"arch"`

	// Parameters are the configurable units this component exposes.
	Parameters []Parameter `json:"parameters"`

	// Containers lists the containers that make up the component.
	Containers []Container `json:"containers"`

	// WorkloadSettings carry configuration for the workload runtime
	// named by WorkloadType.
	WorkloadSettings []WorkloadSetting `json:"workloadSettings"`
}

// DefaultComponent returns a component populated with the documented
// defaults: the Singleton workload type, linux on amd64, and empty
// collections.
func DefaultComponent() Component {
	return Component{
		WorkloadType:     DefaultWorkloadType,
		OSType:           "linux",
		Arch:             "amd64",
		Parameters:       []Parameter{},
		Containers:       []Container{},
		WorkloadSettings: []WorkloadSetting{},
	}
}

// UnmarshalJSON decodes a component, seeding every absent field with its
// default. Explicitly provided zero values are kept.
func (c *Component) UnmarshalJSON(data []byte) error {
	type plain Component
	tmp := plain(DefaultComponent())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = Component(tmp)
	return nil
}

// GroupVersionKind parses the component's workload type identifier.
func (c *Component) GroupVersionKind() (GroupVersionKind, error) {
	return ParseGroupVersionKind(c.WorkloadType)
}
