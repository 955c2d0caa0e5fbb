package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	path := writeTestFile(t, "component.yaml", `
workloadType: core.hydra.io/v1alpha1.ReplicatedService
parameters:
  - name: message
    type: string
containers:
  - name: server
    image: nginx:latest
    ports:
      - name: http
        containerPort: 80
`)

	var err error
	output := captureOutput(func() {
		err = Validate(path)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "is a valid component schematic")
	assert.Contains(t, output, "Workload:   core.hydra.io/v1alpha1.ReplicatedService")
	assert.Contains(t, output, "Containers: 1")
	assert.Contains(t, output, "Parameters: 1")
}

func TestValidate_ManifestName(t *testing.T) {
	path := writeTestFile(t, "manifest.yaml", `
apiVersion: core.hydra.io/v1alpha1
kind: ComponentSchematic
metadata:
  name: frontend
spec:
  containers:
    - name: web
      image: nginx:1.25
`)

	var err error
	output := captureOutput(func() {
		err = Validate(path)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Name:       frontend")
}

func TestValidate_Invalid(t *testing.T) {
	path := writeTestFile(t, "component.yaml", `
containers:
  - name: server
`)

	err := Validate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component validation failed")
	assert.Contains(t, err.Error(), "image is required")
}

func TestValidate_MissingFile(t *testing.T) {
	err := Validate("no-such-file.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schematic file")
}
