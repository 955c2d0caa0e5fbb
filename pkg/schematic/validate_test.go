package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validComponent() *Component {
	c := DefaultComponent()
	c.Containers = []Container{{
		Name:      "server",
		Image:     "nginx:latest",
		Resources: DefaultResources(),
		Env:       []Env{},
		Ports:     []Port{{Name: "http", ContainerPort: 80, Protocol: ProtocolTCP}},
	}}
	return &c
}

func TestValidate_ValidComponent(t *testing.T) {
	c := validComponent()
	assert.NoError(t, c.Validate())
}

func TestValidate_ValidQuantities(t *testing.T) {
	for _, quantity := range []string{"1", "0.5", "100m", "1G", "2Gi", "128M"} {
		c := validComponent()
		c.Containers[0].Resources.CPU.Required = quantity
		assert.NoError(t, c.Validate(), "quantity %q should be valid", quantity)
	}
}

func TestValidate_WorkloadType(t *testing.T) {
	c := validComponent()
	c.WorkloadType = "core.hydra.io"

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workloadType:")
	assert.Contains(t, err.Error(), "missing version and kind")
}

func TestValidate_Parameters(t *testing.T) {
	c := validComponent()
	c.Parameters = []Parameter{
		{Name: "", ParameterType: ParameterTypeString},
		{Name: "message", ParameterType: ParameterTypeString},
		{Name: "message", ParameterType: ParameterTypeString},
		{Name: "broken", ParameterType: ParameterType("integer")},
	}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameters[0]: name is required")
	assert.Contains(t, err.Error(), `parameters[2]: name "message" is declared more than once`)
	assert.Contains(t, err.Error(), "parameters[3]: type must be one of:")
}

func TestValidate_ContainerNames(t *testing.T) {
	c := validComponent()
	second := c.Containers[0]
	c.Containers = append(c.Containers, second)

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `containers[1]: name "server" is declared more than once`)

	c = validComponent()
	c.Containers[0].Name = ""
	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "containers[0]: name is required")
}

func TestValidate_ContainerImage(t *testing.T) {
	c := validComponent()
	c.Containers[0].Image = ""

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "containers[0]: image is required")
}

func TestValidate_Env(t *testing.T) {
	value := "literal"
	param := "message"
	c := validComponent()
	c.Containers[0].Env = []Env{
		{Name: ""},
		{Name: "BOTH", Value: &value, FromParam: &param},
	}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "containers[0].env[0]: name is required")
	assert.Contains(t, err.Error(), "containers[0].env[1]: value and fromParam are mutually exclusive")
}

func TestValidate_Ports(t *testing.T) {
	tests := []struct {
		name    string
		port    Port
		wantErr string
	}{
		{
			name:    "missing name",
			port:    Port{ContainerPort: 80, Protocol: ProtocolTCP},
			wantErr: "containers[0].ports[0]: name is required",
		},
		{
			name:    "port zero",
			port:    Port{Name: "http", ContainerPort: 0, Protocol: ProtocolTCP},
			wantErr: "containers[0].ports[0]: containerPort must be 1-65535",
		},
		{
			name:    "port too large",
			port:    Port{Name: "http", ContainerPort: 70000, Protocol: ProtocolTCP},
			wantErr: "containers[0].ports[0]: containerPort must be 1-65535",
		},
		{
			name:    "bad protocol",
			port:    Port{Name: "http", ContainerPort: 80, Protocol: PortProtocol("QUIC")},
			wantErr: "containers[0].ports[0]: protocol must be one of:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validComponent()
			c.Containers[0].Ports = []Port{tt.port}

			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Quantities(t *testing.T) {
	c := validComponent()
	c.Containers[0].Resources.CPU.Required = "lots"
	c.Containers[0].Resources.Memory.Required = "1Q"
	c.Containers[0].Resources.GPU.Required = ""

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `containers[0].resources.cpu.required: "lots" is not a valid quantity`)
	assert.Contains(t, err.Error(), `containers[0].resources.memory.required: "1Q" is not a valid quantity`)
	assert.Contains(t, err.Error(), `containers[0].resources.gpu.required: "" is not a valid quantity`)
}

func TestValidate_Paths(t *testing.T) {
	c := validComponent()
	c.Containers[0].Resources.Paths = []Path{
		{Name: "", Path: "", AccessMode: AccessMode("rw"), SharingPolicy: SharingPolicy("shared")},
	}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "containers[0].resources.paths[0]: name is required")
	assert.Contains(t, err.Error(), "containers[0].resources.paths[0]: path is required")
	assert.Contains(t, err.Error(), "containers[0].resources.paths[0]: accessMode must be one of:")
	assert.Contains(t, err.Error(), "containers[0].resources.paths[0]: sharingPolicy must be one of:")
}

func TestValidate_Probes(t *testing.T) {
	c := validComponent()
	c.Containers[0].LivenessProbe = &HealthProbe{
		Exec:    &Exec{Command: []string{}},
		HTTPGet: &HTTPGet{Path: "", Port: 0, HTTPHeaders: []HTTPHeader{{Name: "", Value: "x"}}},
	}
	c.Containers[0].ReadinessProbe = &HealthProbe{
		TCPSocket: &TCPSocket{Port: 0},
	}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "containers[0].livenessProbe.exec: command must not be empty")
	assert.Contains(t, err.Error(), "containers[0].livenessProbe.httpGet: path is required")
	assert.Contains(t, err.Error(), "containers[0].livenessProbe.httpGet: port must be 1-65535")
	assert.Contains(t, err.Error(), "containers[0].livenessProbe.httpGet.httpHeaders[0]: name is required")
	assert.Contains(t, err.Error(), "containers[0].readinessProbe.tcpSocket: port must be 1-65535")
}

func TestValidate_NilProbesAreFine(t *testing.T) {
	c := validComponent()
	c.Containers[0].LivenessProbe = nil
	c.Containers[0].ReadinessProbe = nil
	assert.NoError(t, c.Validate())
}

func TestValidate_WorkloadSettings(t *testing.T) {
	c := validComponent()
	c.WorkloadSettings = []WorkloadSetting{
		{Name: "", ParameterType: ParameterType("")},
	}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workloadSettings[0]: name is required")
	assert.Contains(t, err.Error(), "workloadSettings[0]: type must be one of:")
}

func TestValidate_ParsedComponent(t *testing.T) {
	// A parsed schematic with decode defaults but no container name
	// fails validation even though decoding accepted it.
	c, err := ParseString(`
containers:
  - image: nginx:latest
`)
	require.NoError(t, err)

	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "containers[0]: name is required")
}
