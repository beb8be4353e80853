// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pisilinux/farmctl/internal/core"
	"github.com/pisilinux/farmctl/internal/docker"
)

func testFarmSpec(t *testing.T) FarmSpec {
	t.Helper()
	dir := t.TempDir()

	return FarmSpec{
		ImageRef: core.ImageRef,
		Run: docker.RunSpec{
			Image:       core.ImageRef,
			Name:        core.ContainerName,
			Labels:      map[string]string{core.ManagedLabel: core.ManagedLabelValue},
			SecurityOpt: []string{core.SeccompUnconfined},
			Mounts: []docker.Mount{
				{HostPath: filepath.Join(dir, "repository"), ContainerPath: core.MountPointRepository},
				{HostPath: filepath.Join(dir, "archives"), ContainerPath: core.MountPointArchives},
				{HostPath: filepath.Join(dir, "packages"), ContainerPath: core.MountPointPackages},
				{HostPath: filepath.Join(dir, "db"), ContainerPath: core.MountPointDatabase},
			},
			Command: core.DefaultShell,
		},
	}
}

func execute(t *testing.T, wb *automa.WorkflowBuilder) *automa.Report {
	t.Helper()

	wf, err := wb.Build()
	require.NoError(t, err)

	return wf.Execute(context.Background())
}

func TestStartWorkflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := docker.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().EnsureDaemonRunning(gomock.Any()).Return(nil),
		client.EXPECT().ListContainers(gomock.Any()).Return([]string{"aaa"}, nil),
		client.EXPECT().Start(gomock.Any(), "aaa").Return(nil),
		client.EXPECT().Attach(gomock.Any(), core.ContainerName).Return(nil),
	)

	report := execute(t, NewStartWorkflow(client, core.ContainerName))
	require.Equal(t, automa.StatusSuccess, report.Status)
}

func TestStartWorkflow_DaemonFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := docker.NewMockClient(ctrl)
	client.EXPECT().EnsureDaemonRunning(gomock.Any()).
		Return(core.DaemonUnavailableError.New("daemon down"))
	// nothing is listed, started or attached after the daemon check fails

	report := execute(t, NewStartWorkflow(client, core.ContainerName))
	require.Equal(t, automa.StatusFailed, report.Status)
	require.Error(t, report.Error)
}

func TestStopWorkflow_NoContainersIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := docker.NewMockClient(ctrl)
	client.EXPECT().EnsureDaemonRunning(gomock.Any()).Return(nil)
	client.EXPECT().ListContainers(gomock.Any()).Return(nil, nil)

	report := execute(t, NewStopWorkflow(client))
	require.Equal(t, automa.StatusSuccess, report.Status)
}

func TestInstallWorkflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := testFarmSpec(t)

	client := docker.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().EnsureDaemonRunning(gomock.Any()).Return(nil),
		client.EXPECT().RunDetached(gomock.Any(), spec.Run).Return("deadbeef", nil),
		client.EXPECT().Attach(gomock.Any(), core.ContainerName).Return(nil),
	)

	report := execute(t, NewInstallWorkflow(client, spec))
	require.Equal(t, automa.StatusSuccess, report.Status)

	// the mount directories exist afterwards
	for _, m := range spec.Run.Mounts {
		assert.DirExists(t, m.HostPath)
	}
}

func TestDeleteWorkflow_RemovesImageByFullReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := docker.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().EnsureDaemonRunning(gomock.Any()).Return(nil),
		client.EXPECT().PruneAll(gomock.Any()).Return(nil),
		client.EXPECT().ListContainers(gomock.Any()).Return([]string{"aaa"}, nil),
		client.EXPECT().Remove(gomock.Any(), "aaa").Return(nil),
		client.EXPECT().ImageExists(gomock.Any(), core.ImageRef).Return(true, nil),
		client.EXPECT().RemoveImage(gomock.Any(), core.ImageRef).Return(nil),
	)

	report := execute(t, NewDeleteWorkflow(client, core.ImageRef))
	require.Equal(t, automa.StatusSuccess, report.Status)
}

func TestReinstallWorkflow_MountsMatchFreshInstall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := testFarmSpec(t)

	var installed, reinstalled docker.RunSpec

	client := docker.NewMockClient(ctrl)
	client.EXPECT().EnsureDaemonRunning(gomock.Any()).Return(nil).Times(2)
	client.EXPECT().PruneAll(gomock.Any()).Return(nil)
	client.EXPECT().ListContainers(gomock.Any()).Return([]string{"old"}, nil)
	client.EXPECT().Remove(gomock.Any(), "old").Return(nil)
	client.EXPECT().ImageExists(gomock.Any(), core.ImageRef).Return(true, nil)
	client.EXPECT().RemoveImage(gomock.Any(), core.ImageRef).Return(nil)
	client.EXPECT().Attach(gomock.Any(), core.ContainerName).Return(nil).Times(2)
	client.EXPECT().RunDetached(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, s docker.RunSpec) (string, error) {
			installed = s
			return "first", nil
		})

	report := execute(t, NewInstallWorkflow(client, spec))
	require.Equal(t, automa.StatusSuccess, report.Status)

	client.EXPECT().RunDetached(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, s docker.RunSpec) (string, error) {
			reinstalled = s
			return "second", nil
		})

	report = execute(t, NewReinstallWorkflow(client, spec))
	require.Equal(t, automa.StatusSuccess, report.Status)

	// a reinstalled farm mounts exactly what a fresh install mounts
	assert.Equal(t, installed.Mounts, reinstalled.Mounts)
	assert.Equal(t, installed.Image, reinstalled.Image)
	assert.Equal(t, installed.SecurityOpt, reinstalled.SecurityOpt)
}

func TestDeleteWorkflow_ImageAlreadyAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := docker.NewMockClient(ctrl)
	client.EXPECT().EnsureDaemonRunning(gomock.Any()).Return(nil)
	client.EXPECT().PruneAll(gomock.Any()).Return(nil)
	client.EXPECT().ListContainers(gomock.Any()).Return(nil, nil)
	client.EXPECT().ImageExists(gomock.Any(), core.ImageRef).Return(false, nil)

	report := execute(t, NewDeleteWorkflow(client, core.ImageRef))
	require.Equal(t, automa.StatusSuccess, report.Status)
}
