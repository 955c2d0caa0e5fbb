package schematic

// HydraStatus is the runtime status Kubernetes reports for a Hydra
// object.
type HydraStatus struct {
	// Phase is the lifecycle phase reported by the runtime, nil until
	// the runtime reports one.
	Phase *string `json:"phase"`
}

// Status is an optional HydraStatus.
type Status = *HydraStatus

// Application defines a Hydra application.
type Application struct{}

// Trait describes an operational add-on that attaches to components of a
// suitable workload type. An autoscaler trait, for example, attaches to
// workload types that can be scaled up and down.
type Trait struct{}
