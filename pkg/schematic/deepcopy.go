package schematic

// Hand-written deep copies for the schematic model. Parameter resolution
// and the api/v1alpha1 manifest wrapper both rely on them.

// DeepCopyInto copies the receiver into out.
func (in *Component) DeepCopyInto(out *Component) {
	*out = *in
	if in.Parameters != nil {
		out.Parameters = make([]Parameter, len(in.Parameters))
		for i := range in.Parameters {
			in.Parameters[i].DeepCopyInto(&out.Parameters[i])
		}
	}
	if in.Containers != nil {
		out.Containers = make([]Container, len(in.Containers))
		for i := range in.Containers {
			in.Containers[i].DeepCopyInto(&out.Containers[i])
		}
	}
	if in.WorkloadSettings != nil {
		out.WorkloadSettings = make([]WorkloadSetting, len(in.WorkloadSettings))
		for i := range in.WorkloadSettings {
			in.WorkloadSettings[i].DeepCopyInto(&out.WorkloadSettings[i])
		}
	}
}

// DeepCopy returns a deep copy of the component.
func (in *Component) DeepCopy() *Component {
	if in == nil {
		return nil
	}
	out := new(Component)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out.
func (in *Parameter) DeepCopyInto(out *Parameter) {
	*out = *in
	if in.Description != nil {
		s := *in.Description
		out.Description = &s
	}
	if in.Default != nil {
		out.Default = in.Default.DeepCopy()
	}
}

// DeepCopy returns a deep copy of the parameter.
func (in *Parameter) DeepCopy() *Parameter {
	if in == nil {
		return nil
	}
	out := new(Parameter)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out.
func (in *WorkloadSetting) DeepCopyInto(out *WorkloadSetting) {
	*out = *in
	if in.Description != nil {
		s := *in.Description
		out.Description = &s
	}
	if in.Default != nil {
		out.Default = in.Default.DeepCopy()
	}
	if in.FromParam != nil {
		s := *in.FromParam
		out.FromParam = &s
	}
}

// DeepCopy returns a deep copy of the workload setting.
func (in *WorkloadSetting) DeepCopy() *WorkloadSetting {
	if in == nil {
		return nil
	}
	out := new(WorkloadSetting)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out.
func (in *Container) DeepCopyInto(out *Container) {
	*out = *in
	in.Resources.DeepCopyInto(&out.Resources)
	if in.Env != nil {
		out.Env = make([]Env, len(in.Env))
		for i := range in.Env {
			in.Env[i].DeepCopyInto(&out.Env[i])
		}
	}
	if in.Ports != nil {
		out.Ports = make([]Port, len(in.Ports))
		copy(out.Ports, in.Ports)
	}
	out.LivenessProbe = in.LivenessProbe.DeepCopy()
	out.ReadinessProbe = in.ReadinessProbe.DeepCopy()
}

// DeepCopy returns a deep copy of the container.
func (in *Container) DeepCopy() *Container {
	if in == nil {
		return nil
	}
	out := new(Container)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out.
func (in *Env) DeepCopyInto(out *Env) {
	*out = *in
	if in.Value != nil {
		s := *in.Value
		out.Value = &s
	}
	if in.FromParam != nil {
		s := *in.FromParam
		out.FromParam = &s
	}
}

// DeepCopy returns a deep copy of the env entry.
func (in *Env) DeepCopy() *Env {
	if in == nil {
		return nil
	}
	out := new(Env)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out.
func (in *Port) DeepCopyInto(out *Port) {
	*out = *in
}

// DeepCopy returns a deep copy of the port.
func (in *Port) DeepCopy() *Port {
	if in == nil {
		return nil
	}
	out := new(Port)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out.
func (in *HealthProbe) DeepCopyInto(out *HealthProbe) {
	*out = *in
	out.Exec = in.Exec.DeepCopy()
	out.HTTPGet = in.HTTPGet.DeepCopy()
	if in.TCPSocket != nil {
		t := *in.TCPSocket
		out.TCPSocket = &t
	}
}

// DeepCopy returns a deep copy of the probe.
func (in *HealthProbe) DeepCopy() *HealthProbe {
	if in == nil {
		return nil
	}
	out := new(HealthProbe)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out.
func (in *Exec) DeepCopyInto(out *Exec) {
	*out = *in
	if in.Command != nil {
		out.Command = make([]string, len(in.Command))
		copy(out.Command, in.Command)
	}
}

// DeepCopy returns a deep copy of the exec action.
func (in *Exec) DeepCopy() *Exec {
	if in == nil {
		return nil
	}
	out := new(Exec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out.
func (in *HTTPGet) DeepCopyInto(out *HTTPGet) {
	*out = *in
	if in.HTTPHeaders != nil {
		out.HTTPHeaders = make([]HTTPHeader, len(in.HTTPHeaders))
		copy(out.HTTPHeaders, in.HTTPHeaders)
	}
}

// DeepCopy returns a deep copy of the HTTP GET action.
func (in *HTTPGet) DeepCopy() *HTTPGet {
	if in == nil {
		return nil
	}
	out := new(HTTPGet)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out.
func (in *Resources) DeepCopyInto(out *Resources) {
	*out = *in
	if in.Paths != nil {
		out.Paths = make([]Path, len(in.Paths))
		copy(out.Paths, in.Paths)
	}
}

// DeepCopy returns a deep copy of the resources.
func (in *Resources) DeepCopy() *Resources {
	if in == nil {
		return nil
	}
	out := new(Resources)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out.
func (in *HydraStatus) DeepCopyInto(out *HydraStatus) {
	*out = *in
	if in.Phase != nil {
		s := *in.Phase
		out.Phase = &s
	}
}

// DeepCopy returns a deep copy of the status.
func (in *HydraStatus) DeepCopy() *HydraStatus {
	if in == nil {
		return nil
	}
	out := new(HydraStatus)
	in.DeepCopyInto(out)
	return out
}
