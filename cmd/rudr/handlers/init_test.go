package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r4b3rt/rudr/internal/wizard"
	"github.com/r4b3rt/rudr/pkg/schematic"
)

// saveAndRestoreInitFactories saves and restores init factory functions.
func saveAndRestoreInitFactories(t *testing.T) {
	origFileExists := fileExists
	origRunWizard := runWizard
	origWriteFile := writeFile
	origStdinIsTerminal := stdinIsTerminal

	t.Cleanup(func() {
		fileExists = origFileExists
		runWizard = origRunWizard
		writeFile = origWriteFile
		stdinIsTerminal = origStdinIsTerminal
	})
}

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestInit_NonInteractive(t *testing.T) {
	saveAndRestoreInitFactories(t)

	fileExists = func(string) bool { return false }
	stdinIsTerminal = func() bool { return false }

	var writtenPath string
	var written []byte
	writeFile = func(path string, data []byte, _ os.FileMode) error {
		writtenPath = path
		written = data
		return nil
	}

	var err error
	output := captureOutput(func() {
		err = Init(context.Background(), "component.yaml")
	})
	require.NoError(t, err)

	assert.Equal(t, "component.yaml", writtenPath)
	assert.Contains(t, string(written), "workloadType: core.hydra.io/v1alpha1.ReplicatedService")
	assert.Contains(t, string(written), "image: nginx:latest")
	assert.Contains(t, string(written), "containerPort: 80")
	assert.Contains(t, string(written), "readinessProbe")
	assert.Contains(t, string(written), "fromParam: message")

	assert.Contains(t, output, "No terminal detected")
	assert.Contains(t, output, "Component saved!")
	assert.Contains(t, output, "rudr validate -f component.yaml")
}

func TestInit_Wizard(t *testing.T) {
	saveAndRestoreInitFactories(t)

	fileExists = func(string) bool { return false }
	stdinIsTerminal = func() bool { return true }
	runWizard = func(context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			Name:         "api",
			Image:        "ghcr.io/acme/api:v2",
			WorkloadType: "core.hydra.io/v1alpha1.Task",
		}, nil
	}

	var written []byte
	writeFile = func(_ string, data []byte, _ os.FileMode) error {
		written = data
		return nil
	}

	var err error
	output := captureOutput(func() {
		err = Init(context.Background(), "component.yaml")
	})
	require.NoError(t, err)

	assert.Contains(t, string(written), "name: api")
	assert.Contains(t, string(written), "image: ghcr.io/acme/api:v2")
	assert.Contains(t, string(written), "workloadType: core.hydra.io/v1alpha1.Task")

	assert.Contains(t, output, "rudr - Hydra component schematics")
	assert.Contains(t, output, "Component saved!")
}

func TestInit_WizardCanceled(t *testing.T) {
	saveAndRestoreInitFactories(t)

	fileExists = func(string) bool { return false }
	stdinIsTerminal = func() bool { return true }
	runWizard = func(context.Context) (*wizard.Result, error) {
		return nil, errors.New("user aborted")
	}

	var err error
	captureOutput(func() {
		err = Init(context.Background(), "component.yaml")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_WriteError(t *testing.T) {
	saveAndRestoreInitFactories(t)

	fileExists = func(string) bool { return false }
	stdinIsTerminal = func() bool { return false }
	writeFile = func(string, []byte, os.FileMode) error {
		return errors.New("disk full")
	}

	var err error
	captureOutput(func() {
		err = Init(context.Background(), "component.yaml")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write component")
}

func TestInit_OverwriteWarning(t *testing.T) {
	saveAndRestoreInitFactories(t)

	fileExists = func(string) bool { return true }
	stdinIsTerminal = func() bool { return false }
	writeFile = func(string, []byte, os.FileMode) error { return nil }

	var err error
	output := captureOutput(func() {
		err = Init(context.Background(), "component.yaml")
	})
	require.NoError(t, err)

	assert.Contains(t, output, "component.yaml already exists and will be overwritten")
}

func TestExampleComponent(t *testing.T) {
	c := exampleComponent()

	require.NoError(t, c.Validate())
	assert.Equal(t, "core.hydra.io/v1alpha1.ReplicatedService", c.WorkloadType)
	require.Len(t, c.Containers, 1)

	ctr := c.Containers[0]
	assert.Equal(t, "server", ctr.Name)
	assert.Equal(t, "nginx:latest", ctr.Image)
	require.Len(t, ctr.Ports, 1)
	assert.Equal(t, schematic.ProtocolTCP, ctr.Ports[0].Protocol)

	require.NotNil(t, ctr.ReadinessProbe)
	require.NotNil(t, ctr.ReadinessProbe.HTTPGet)
	assert.Equal(t, "/", ctr.ReadinessProbe.HTTPGet.Path)
	assert.Equal(t, int32(80), ctr.ReadinessProbe.HTTPGet.Port)
}

func TestExampleComponent_ParametersResolve(t *testing.T) {
	c := exampleComponent()

	resolved, err := c.ResolveParameters(schematic.ParameterValues{})
	require.NoError(t, err)

	require.Len(t, resolved.Containers[0].Env, 1)
	env := resolved.Containers[0].Env[0]
	assert.Equal(t, "MESSAGE", env.Name)
	require.NotNil(t, env.Value)
	assert.Equal(t, "Hello World", *env.Value)
}

func TestPrintWelcome(t *testing.T) {
	output := captureOutput(printWelcome)

	assert.Contains(t, output, "rudr - Hydra component schematics")
	assert.Contains(t, output, "This wizard creates a component schematic")
}

func TestPrintInitSuccess(t *testing.T) {
	component := exampleComponent()

	output := captureOutput(func() {
		printInitSuccess("web.yaml", component)
	})

	assert.Contains(t, output, "Component saved!")
	assert.Contains(t, output, "File: web.yaml")
	assert.Contains(t, output, "server (nginx:latest)")
	assert.Contains(t, output, "80/TCP")
	assert.Contains(t, output, "rudr render -f web.yaml")
}
