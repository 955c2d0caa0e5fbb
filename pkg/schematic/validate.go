package schematic

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/api/resource"
)

// Validate checks the semantic requirements that decoding deliberately
// leaves alone: required names, port ranges, quantity syntax, enum
// domains for hand-built values, and the workload type format.
//
// A component is well-formed exactly when Validate returns nil. The
// workload projector assumes well-formed input.
func (c *Component) Validate() error {
	var errs []error

	if _, err := ParseGroupVersionKind(c.WorkloadType); err != nil {
		errs = append(errs, fmt.Errorf("workloadType: %w", err))
	}

	paramNames := make(map[string]bool, len(c.Parameters))
	for i := range c.Parameters {
		p := &c.Parameters[i]
		prefix := fmt.Sprintf("parameters[%d]", i)
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		} else if paramNames[p.Name] {
			errs = append(errs, fmt.Errorf("%s: name %q is declared more than once", prefix, p.Name))
		} else {
			paramNames[p.Name] = true
		}
		if !p.ParameterType.IsValid() {
			errs = append(errs, fmt.Errorf("%s: type must be one of: %v", prefix, ValidParameterTypes()))
		}
	}

	containerNames := make(map[string]bool, len(c.Containers))
	for i := range c.Containers {
		ctr := &c.Containers[i]
		prefix := fmt.Sprintf("containers[%d]", i)
		if ctr.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		} else if containerNames[ctr.Name] {
			errs = append(errs, fmt.Errorf("%s: name %q is declared more than once", prefix, ctr.Name))
		} else {
			containerNames[ctr.Name] = true
		}
		errs = append(errs, ctr.validate(prefix)...)
	}

	for i := range c.WorkloadSettings {
		ws := &c.WorkloadSettings[i]
		prefix := fmt.Sprintf("workloadSettings[%d]", i)
		if ws.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if !ws.ParameterType.IsValid() {
			errs = append(errs, fmt.Errorf("%s: type must be one of: %v", prefix, ValidParameterTypes()))
		}
	}

	return errors.Join(errs...)
}

func (c *Container) validate(prefix string) []error {
	var errs []error

	if c.Image == "" {
		errs = append(errs, fmt.Errorf("%s: image is required", prefix))
	}

	for i := range c.Env {
		e := &c.Env[i]
		envPrefix := fmt.Sprintf("%s.env[%d]", prefix, i)
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", envPrefix))
		}
		if e.Value != nil && e.FromParam != nil {
			errs = append(errs, fmt.Errorf("%s: value and fromParam are mutually exclusive", envPrefix))
		}
	}

	for i := range c.Ports {
		p := &c.Ports[i]
		portPrefix := fmt.Sprintf("%s.ports[%d]", prefix, i)
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", portPrefix))
		}
		if p.ContainerPort < 1 || p.ContainerPort > 65535 {
			errs = append(errs, fmt.Errorf("%s: containerPort must be 1-65535", portPrefix))
		}
		if !p.Protocol.IsValid() {
			errs = append(errs, fmt.Errorf("%s: protocol must be one of: %v", portPrefix, ValidPortProtocols()))
		}
	}

	errs = append(errs, c.Resources.validate(prefix+".resources")...)
	errs = append(errs, c.LivenessProbe.validate(prefix+".livenessProbe")...)
	errs = append(errs, c.ReadinessProbe.validate(prefix+".readinessProbe")...)

	return errs
}

func (r *Resources) validate(prefix string) []error {
	var errs []error

	if _, err := resource.ParseQuantity(r.CPU.Required); err != nil {
		errs = append(errs, fmt.Errorf("%s.cpu.required: %q is not a valid quantity", prefix, r.CPU.Required))
	}
	if _, err := resource.ParseQuantity(r.Memory.Required); err != nil {
		errs = append(errs, fmt.Errorf("%s.memory.required: %q is not a valid quantity", prefix, r.Memory.Required))
	}
	if _, err := resource.ParseQuantity(r.GPU.Required); err != nil {
		errs = append(errs, fmt.Errorf("%s.gpu.required: %q is not a valid quantity", prefix, r.GPU.Required))
	}

	for i := range r.Paths {
		p := &r.Paths[i]
		pathPrefix := fmt.Sprintf("%s.paths[%d]", prefix, i)
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", pathPrefix))
		}
		if p.Path == "" {
			errs = append(errs, fmt.Errorf("%s: path is required", pathPrefix))
		}
		if !p.AccessMode.IsValid() {
			errs = append(errs, fmt.Errorf("%s: accessMode must be one of: %v", pathPrefix, ValidAccessModes()))
		}
		if !p.SharingPolicy.IsValid() {
			errs = append(errs, fmt.Errorf("%s: sharingPolicy must be one of: %v", pathPrefix, ValidSharingPolicies()))
		}
	}

	return errs
}

func (hp *HealthProbe) validate(prefix string) []error {
	if hp == nil {
		return nil
	}

	var errs []error

	if hp.Exec != nil && len(hp.Exec.Command) == 0 {
		errs = append(errs, fmt.Errorf("%s.exec: command must not be empty", prefix))
	}
	if hp.HTTPGet != nil {
		if hp.HTTPGet.Path == "" {
			errs = append(errs, fmt.Errorf("%s.httpGet: path is required", prefix))
		}
		if hp.HTTPGet.Port < 1 || hp.HTTPGet.Port > 65535 {
			errs = append(errs, fmt.Errorf("%s.httpGet: port must be 1-65535", prefix))
		}
		for i := range hp.HTTPGet.HTTPHeaders {
			if hp.HTTPGet.HTTPHeaders[i].Name == "" {
				errs = append(errs, fmt.Errorf("%s.httpGet.httpHeaders[%d]: name is required", prefix, i))
			}
		}
	}
	if hp.TCPSocket != nil {
		if hp.TCPSocket.Port < 1 || hp.TCPSocket.Port > 65535 {
			errs = append(errs, fmt.Errorf("%s.tcpSocket: port must be 1-65535", prefix))
		}
	}

	return errs
}
