package schematic

import (
	"encoding/json"
)

// HealthProbe describes a periodic check on the health of a container.
//
// A probe carries one or more actions (exec, httpGet, tcpSocket) and five
// tuning numbers. The tuning numbers always have values: absent fields
// take the documented defaults at decode time.
type HealthProbe struct {
	// Exec runs a command inside the container.
	Exec *Exec `json:"exec"`

	// HTTPGet performs an HTTP GET request against the container.
	HTTPGet *HTTPGet `json:"httpGet"`

	// TCPSocket attempts to open a TCP connection to the container.
	TCPSocket *TCPSocket `json:"tcpSocket"`

	// InitialDelaySeconds is the wait before the first check. Default 0.
	InitialDelaySeconds int32 `json:"initialDelaySeconds"`

	// PeriodSeconds is the interval between checks. Default 10.
	PeriodSeconds int32 `json:"periodSeconds"`

	// TimeoutSeconds is the per-check timeout. Default 1.
	TimeoutSeconds int32 `json:"timeoutSeconds"`

	// SuccessThreshold is the number of consecutive successes required
	// after a failure. Default 1.
	SuccessThreshold int32 `json:"successThreshold"`

	// FailureThreshold is the number of consecutive failures tolerated.
	// Default 3.
	FailureThreshold int32 `json:"failureThreshold"`
}

// DefaultHealthProbe returns a probe with no actions and the documented
// tuning defaults.
func DefaultHealthProbe() HealthProbe {
	return HealthProbe{
		InitialDelaySeconds: 0,
		PeriodSeconds:       10,
		TimeoutSeconds:      1,
		SuccessThreshold:    1,
		FailureThreshold:    3,
	}
}

// UnmarshalJSON decodes a probe, seeding absent tuning fields with their
// defaults. Explicitly provided zero values are kept.
func (hp *HealthProbe) UnmarshalJSON(data []byte) error {
	type plain HealthProbe
	tmp := plain(DefaultHealthProbe())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*hp = HealthProbe(tmp)
	return nil
}

// Exec describes a command, as an argument array, run inside a container
// to probe it.
type Exec struct {
	// Command is the argument array to execute.
	Command []string `json:"command"`
}

// HTTPGet describes an HTTP GET request used to probe a container.
type HTTPGet struct {
	// Path is the request path.
	Path string `json:"path"`

	// Port is the port the request is sent to.
	Port int32 `json:"port"`

	// HTTPHeaders are additional request headers.
	HTTPHeaders []HTTPHeader `json:"httpHeaders"`
}

// HTTPHeader is a single probe request header.
//
// Headers are a list rather than a map because the same header name may
// appear more than once.
type HTTPHeader struct {
	// Name is the header name.
	Name string `json:"name"`

	// Value is the header value.
	Value string `json:"value"`
}

// TCPSocket describes a socket connection attempt used to probe a
// container.
type TCPSocket struct {
	// Port is the port to connect to.
	Port int32 `json:"port"`
}
