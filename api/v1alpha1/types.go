package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/r4b3rt/rudr/pkg/schematic"
)

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=comp
// +kubebuilder:printcolumn:name="Workload",type=string,JSONPath=`.spec.workloadType`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// ComponentSchematic is the Schema for the componentschematics API. The
// spec is the developer-authored component; the status is filled in by
// the workload runtime.
type ComponentSchematic struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   schematic.Component `json:"spec,omitempty"`
	Status schematic.Status    `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ComponentSchematicList contains a list of ComponentSchematic.
type ComponentSchematicList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ComponentSchematic `json:"items"`
}
