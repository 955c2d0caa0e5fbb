package schematic

import (
	"encoding/json"
	"fmt"
)

// Container describes one container of a component.
type Container struct {
	// Name identifies the container within the component.
	Name string `json:"name"`

	// Image is the OCI image reference to run.
	Image string `json:"image"`

	// Resources declares what the container needs to operate.
	Resources Resources `json:"resources"`

	// Env lists the environment variables set in the container.
	Env []Env `json:"env"`

	// Ports lists the ports the container exposes.
	Ports []Port `json:"ports"`

	// LivenessProbe checks whether the container is alive.
	LivenessProbe *HealthProbe `json:"livenessProbe"`

	// ReadinessProbe checks whether the container can serve traffic.
	ReadinessProbe *HealthProbe `json:"readinessProbe"`
}

// UnmarshalJSON decodes a container, seeding the resource defaults for
// absent fields.
func (c *Container) UnmarshalJSON(data []byte) error {
	type plain Container
	tmp := plain{
		Resources: DefaultResources(),
		Env:       []Env{},
		Ports:     []Port{},
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = Container(tmp)
	return nil
}

// Env describes an environment variable for a container.
//
// Value and FromParam are mutually exclusive: a variable either carries a
// literal value or references a component parameter to be filled in by
// parameter resolution.
type Env struct {
	// Name is the environment variable name.
	Name string `json:"name"`

	// Value is the literal value, when one is given.
	Value *string `json:"value"`

	// FromParam names the component parameter supplying the value.
	FromParam *string `json:"fromParam"`
}

// Port describes a port exposed by a container.
type Port struct {
	// Name identifies the port.
	Name string `json:"name"`

	// ContainerPort is the port number inside the container.
	ContainerPort int32 `json:"containerPort"`

	// Protocol is the transport protocol spoken on the port.
	Protocol PortProtocol `json:"protocol"`
}

// UnmarshalJSON decodes a port, defaulting the protocol to TCP when
// absent.
func (p *Port) UnmarshalJSON(data []byte) error {
	type plain Port
	tmp := plain{Protocol: ProtocolTCP}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*p = Port(tmp)
	return nil
}

// PortProtocol is the transport protocol of a container port.
type PortProtocol string

const (
	// ProtocolTCP is the Transmission Control Protocol.
	ProtocolTCP PortProtocol = "TCP"
	// ProtocolUDP is the User Datagram Protocol.
	ProtocolUDP PortProtocol = "UDP"
	// ProtocolSCTP is the Stream Control Transmission Protocol.
	ProtocolSCTP PortProtocol = "SCTP"
)

// ValidPortProtocols returns all valid port protocols.
func ValidPortProtocols() []PortProtocol {
	return []PortProtocol{ProtocolTCP, ProtocolUDP, ProtocolSCTP}
}

// IsValid returns true if the protocol is one Kubernetes supports.
func (p PortProtocol) IsValid() bool {
	switch p {
	case ProtocolTCP, ProtocolUDP, ProtocolSCTP:
		return true
	default:
		return false
	}
}

// UnmarshalJSON rejects tokens outside the protocol domain.
func (p *PortProtocol) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := PortProtocol(s)
	if !v.IsValid() {
		return fmt.Errorf("invalid protocol %q, must be one of: %v", s, ValidPortProtocols())
	}
	*p = v
	return nil
}
