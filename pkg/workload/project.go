// Package workload projects component schematics onto the Kubernetes
// primitives a workload runtime schedules.
package workload

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/r4b3rt/rudr/pkg/schematic"
)

// PodSpec projects a component onto the pod specification its workload
// runtime submits to Kubernetes. The input is not mutated.
//
// Only the containers are populated; scheduling concerns beyond them are
// left to the workload runtime. The projection assumes a component that
// passed Validate, in particular that the resource quantities parse.
func PodSpec(c *schematic.Component) corev1.PodSpec {
	containers := make([]corev1.Container, 0, len(c.Containers))
	for i := range c.Containers {
		containers = append(containers, expandContainer(&c.Containers[i]))
	}
	return corev1.PodSpec{
		Containers: containers,
	}
}

func expandContainer(ctr *schematic.Container) corev1.Container {
	return corev1.Container{
		Name:           ctr.Name,
		Image:          ctr.Image,
		Resources:      expandResources(&ctr.Resources),
		Ports:          expandPorts(ctr.Ports),
		Env:            expandEnv(ctr.Env),
		LivenessProbe:  expandProbe(ctr.LivenessProbe),
		ReadinessProbe: expandProbe(ctr.ReadinessProbe),
	}
}

// expandResources encodes the cpu and memory requirements as resource
// requests. No limits are set. GPU counts and paths have no direct pod
// equivalent and stay with the workload runtime.
func expandResources(r *schematic.Resources) corev1.ResourceRequirements {
	return corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse(r.CPU.Required),
			corev1.ResourceMemory: resource.MustParse(r.Memory.Required),
		},
	}
}

func expandPorts(ports []schematic.Port) []corev1.ContainerPort {
	out := make([]corev1.ContainerPort, 0, len(ports))
	for _, p := range ports {
		out = append(out, corev1.ContainerPort{
			Name:          p.Name,
			ContainerPort: p.ContainerPort,
			Protocol:      corev1.Protocol(p.Protocol),
		})
	}
	return out
}

// expandEnv carries literal values through. A fromParam reference that
// was not resolved beforehand stays inert: the variable keeps its name
// and an empty value.
func expandEnv(env []schematic.Env) []corev1.EnvVar {
	out := make([]corev1.EnvVar, 0, len(env))
	for _, e := range env {
		v := corev1.EnvVar{Name: e.Name}
		if e.Value != nil {
			v.Value = *e.Value
		}
		out = append(out, v)
	}
	return out
}

// expandProbe translates a health probe. The five tuning fields always
// carry values because decoding seeds their defaults, so they are always
// emitted.
func expandProbe(hp *schematic.HealthProbe) *corev1.Probe {
	if hp == nil {
		return nil
	}

	var handler corev1.ProbeHandler
	if hp.Exec != nil {
		handler.Exec = &corev1.ExecAction{
			Command: append([]string(nil), hp.Exec.Command...),
		}
	}
	if hp.HTTPGet != nil {
		handler.HTTPGet = expandHTTPGet(hp.HTTPGet)
	}
	if hp.TCPSocket != nil {
		handler.TCPSocket = &corev1.TCPSocketAction{
			Port: intstr.FromInt32(hp.TCPSocket.Port),
		}
	}

	return &corev1.Probe{
		ProbeHandler:        handler,
		InitialDelaySeconds: hp.InitialDelaySeconds,
		PeriodSeconds:       hp.PeriodSeconds,
		TimeoutSeconds:      hp.TimeoutSeconds,
		SuccessThreshold:    hp.SuccessThreshold,
		FailureThreshold:    hp.FailureThreshold,
	}
}

func expandHTTPGet(g *schematic.HTTPGet) *corev1.HTTPGetAction {
	headers := make([]corev1.HTTPHeader, 0, len(g.HTTPHeaders))
	for _, h := range g.HTTPHeaders {
		headers = append(headers, corev1.HTTPHeader{Name: h.Name, Value: h.Value})
	}
	return &corev1.HTTPGetAction{
		Path:        g.Path,
		Port:        intstr.FromInt32(g.Port),
		HTTPHeaders: headers,
	}
}
