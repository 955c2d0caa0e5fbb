package schematic

import (
	"encoding/json"
	"fmt"
)

// Resources declares what a container needs to operate.
//
// Quantities are kept as strings in Kubernetes quantity syntax; Validate
// checks that they parse.
type Resources struct {
	// CPU is the required CPU core count. Default "1".
	CPU CPU `json:"cpu"`

	// Memory is the required memory. Default "1G".
	Memory Memory `json:"memory"`

	// GPU is the required GPU core count. Default "0".
	GPU GPU `json:"gpu"`

	// Paths lists filesystem paths attached to the container.
	Paths []Path `json:"paths"`
}

// DefaultResources returns the documented resource defaults: one CPU
// core, 1G of memory, no GPUs, no paths.
func DefaultResources() Resources {
	return Resources{
		CPU:    CPU{Required: "1"},
		Memory: Memory{Required: "1G"},
		GPU:    GPU{Required: "0"},
		Paths:  []Path{},
	}
}

// UnmarshalJSON decodes resources, seeding absent fields with their
// defaults.
func (r *Resources) UnmarshalJSON(data []byte) error {
	type plain Resources
	tmp := plain(DefaultResources())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*r = Resources(tmp)
	return nil
}

// CPU describes the CPU core count required by a container.
type CPU struct {
	// Required is the core count in Kubernetes quantity syntax.
	Required string `json:"required"`
}

// Memory describes the amount of memory required by a container.
type Memory struct {
	// Required is the amount in Kubernetes quantity syntax.
	Required string `json:"required"`
}

// GPU describes the GPU core count required by a container.
type GPU struct {
	// Required is the core count in Kubernetes quantity syntax.
	Required string `json:"required"`
}

// Path describes a filesystem path attached to a container, with its
// access requirements.
type Path struct {
	// Name identifies the attachment.
	Name string `json:"name"`

	// Path is the mount location inside the container.
	Path string `json:"path"`

	// AccessMode is how the container may use the filesystem.
	AccessMode AccessMode `json:"accessMode"`

	// SharingPolicy is whether other containers may attach the same
	// filesystem.
	SharingPolicy SharingPolicy `json:"sharingPolicy"`
}

// UnmarshalJSON decodes a path, defaulting the access mode to RW and the
// sharing policy to Exclusive when absent.
func (p *Path) UnmarshalJSON(data []byte) error {
	type plain Path
	tmp := plain{AccessMode: AccessModeRW, SharingPolicy: SharingExclusive}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*p = Path(tmp)
	return nil
}

// AccessMode is how a container may use an attached filesystem.
type AccessMode string

const (
	// AccessModeRW allows reads and writes.
	AccessModeRW AccessMode = "RW"
	// AccessModeRO allows reads only.
	AccessModeRO AccessMode = "RO"
)

// ValidAccessModes returns all valid access modes.
func ValidAccessModes() []AccessMode {
	return []AccessMode{AccessModeRW, AccessModeRO}
}

// IsValid returns true if the access mode is supported.
func (m AccessMode) IsValid() bool {
	switch m {
	case AccessModeRW, AccessModeRO:
		return true
	default:
		return false
	}
}

// UnmarshalJSON rejects tokens outside the access mode domain.
func (m *AccessMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := AccessMode(s)
	if !v.IsValid() {
		return fmt.Errorf("invalid access mode %q, must be one of: %v", s, ValidAccessModes())
	}
	*m = v
	return nil
}

// SharingPolicy is whether an attached filesystem may be shared across
// containers. An Exclusive filesystem attaches to one container only.
type SharingPolicy string

const (
	// SharingShared allows multiple containers to attach the filesystem.
	SharingShared SharingPolicy = "Shared"
	// SharingExclusive restricts the filesystem to a single container.
	SharingExclusive SharingPolicy = "Exclusive"
)

// ValidSharingPolicies returns all valid sharing policies.
func ValidSharingPolicies() []SharingPolicy {
	return []SharingPolicy{SharingShared, SharingExclusive}
}

// IsValid returns true if the sharing policy is supported.
func (p SharingPolicy) IsValid() bool {
	switch p {
	case SharingShared, SharingExclusive:
		return true
	default:
		return false
	}
}

// UnmarshalJSON rejects tokens outside the sharing policy domain.
func (p *SharingPolicy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := SharingPolicy(s)
	if !v.IsValid() {
		return fmt.Errorf("invalid sharing policy %q, must be one of: %v", s, ValidSharingPolicies())
	}
	*p = v
	return nil
}
