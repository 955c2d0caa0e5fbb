package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	cmd := Submit()

	require.NotNil(t, cmd)
	assert.Equal(t, "submit", cmd.Use)
	assert.Equal(t, "Submit a component to a Kubernetes cluster", cmd.Short)
	assert.NotNil(t, cmd.RunE, "Submit command should have RunE function")
}

func TestSubmit_Flags(t *testing.T) {
	cmd := Submit()

	file := cmd.Flags().Lookup("file")
	require.NotNil(t, file, "file flag should exist")
	assert.Equal(t, "f", file.Shorthand)

	namespace := cmd.Flags().Lookup("namespace")
	require.NotNil(t, namespace, "namespace flag should exist")
	assert.Equal(t, "n", namespace.Shorthand)
	assert.Equal(t, "default", namespace.DefValue)

	timeout := cmd.Flags().Lookup("timeout")
	require.NotNil(t, timeout, "timeout flag should exist")
	assert.Equal(t, "2m0s", timeout.DefValue)

	wait := cmd.Flags().Lookup("wait")
	require.NotNil(t, wait, "wait flag should exist")
	assert.Equal(t, "false", wait.DefValue)

	require.NotNil(t, cmd.Flags().Lookup("kubeconfig"))
	require.NotNil(t, cmd.Flags().Lookup("name"))
	require.NotNil(t, cmd.Flags().Lookup("values"))
}
