// SPDX-License-Identifier: Apache-2.0

package docker

import (
	"context"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pisilinux/farmctl/internal/core"
	"github.com/pisilinux/farmctl/internal/exc"
)

// recordedCall captures one invocation handed to the fake executor.
type recordedCall struct {
	name string
	args []string
}

func newTestClient(result exc.Result, opts ...ClientOption) (*CLIClient, *[]recordedCall) {
	calls := &[]recordedCall{}

	base := []ClientOption{WithSudo(false)}
	c := NewCLIClient(append(base, opts...)...)
	c.capture = func(ctx context.Context, logger zerolog.Logger, name string, args ...string) (exc.Result, error) {
		*calls = append(*calls, recordedCall{name: name, args: args})
		return result, nil
	}
	c.ensureDaemon = func(ctx context.Context, unit string) error { return nil }

	return c, calls
}

func TestListContainers(t *testing.T) {
	c, calls := newTestClient(exc.Result{Stdout: "abc123\ndef456\n"})

	ids, err := c.ListContainers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"abc123", "def456"}, ids)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "docker", call.name)
	assert.Equal(t, []string{"ps", "-aq", "--filter", "label=org.pisilinux.farm=managed"}, call.args)
}

func TestListContainers_Empty(t *testing.T) {
	c, _ := newTestClient(exc.Result{Stdout: "\n"})

	ids, err := c.ListContainers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRunDetached_ArgsAndID(t *testing.T) {
	c, calls := newTestClient(exc.Result{Stdout: "deadbeef\n"})

	spec := RunSpec{
		Image:       core.ImageRef,
		Name:        core.ContainerName,
		Labels:      map[string]string{core.ManagedLabel: core.ManagedLabelValue},
		SecurityOpt: []string{core.SeccompUnconfined},
		Mounts: []Mount{
			{HostPath: "/var/lib/farm/repository", ContainerPath: core.MountPointRepository},
			{HostPath: "/var/lib/farm/archives", ContainerPath: core.MountPointArchives},
			{HostPath: "/var/lib/farm/packages", ContainerPath: core.MountPointPackages},
			{HostPath: "/var/lib/farm/db", ContainerPath: core.MountPointDatabase},
		},
		Command: []string{"/bin/bash"},
	}

	id, err := c.RunDetached(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", id)

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{
		"run", "-dit",
		"--name", "farm",
		"--label", "org.pisilinux.farm=managed",
		"--security-opt", "seccomp=unconfined",
		"-v", "/var/lib/farm/repository:/git/repository",
		"-v", "/var/lib/farm/archives:/var/cache/pisi/archives",
		"-v", "/var/lib/farm/packages:/var/cache/pisi/packages",
		"-v", "/var/lib/farm/db:/var/lib/pisi",
		"pisilinux/farm:latest",
		"/bin/bash",
	}, (*calls)[0].args)
}

func TestRemoveImage_UsesFullReference(t *testing.T) {
	c, calls := newTestClient(exc.Result{})

	err := c.RemoveImage(context.Background(), core.ImageRef)
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"rmi", "pisilinux/farm:latest"}, (*calls)[0].args)
}

func TestSudoPrefix(t *testing.T) {
	c, calls := newTestClient(exc.Result{}, WithSudo(true))

	require.NoError(t, c.PruneAll(context.Background()))

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "sudo", call.name)
	assert.Equal(t, []string{"docker", "system", "prune", "-f"}, call.args)
}

func TestRun_FailureClassified(t *testing.T) {
	c, _ := newTestClient(exc.Result{
		ExitCode: 1,
		Stderr:   "Cannot connect to the Docker daemon at unix:///var/run/docker.sock. Is the docker daemon running?",
	})

	err := c.Stop(context.Background(), "abc123")
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, core.DaemonUnavailableError))
}

func TestImageExists(t *testing.T) {
	c, _ := newTestClient(exc.Result{Stdout: "sha256:abc\n"})
	ok, err := c.ImageExists(context.Background(), core.ImageRef)
	require.NoError(t, err)
	assert.True(t, ok)

	c, _ = newTestClient(exc.Result{ExitCode: 1, Stderr: "Error: No such image: pisilinux/farm:latest"})
	ok, err = c.ImageExists(context.Background(), core.ImageRef)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestImageExists_DaemonDown(t *testing.T) {
	c, _ := newTestClient(exc.Result{
		ExitCode: 1,
		Stderr:   "Cannot connect to the Docker daemon at unix:///var/run/docker.sock.",
	})

	_, err := c.ImageExists(context.Background(), core.ImageRef)
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, core.DaemonUnavailableError))
}
