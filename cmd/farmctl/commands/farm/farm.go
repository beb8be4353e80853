// SPDX-License-Identifier: Apache-2.0

package farm

import (
	"context"

	"github.com/automa-saga/logx"
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/cmd/farmctl/commands/common"
	"github.com/pisilinux/farmctl/internal/config"
	"github.com/pisilinux/farmctl/internal/core"
	"github.com/pisilinux/farmctl/internal/docker"
	"github.com/pisilinux/farmctl/internal/workflows"
)

var farmCmd = &cobra.Command{
	Use:   "farm",
	Short: "Manage the farm build container",
	Long:  "Manage the lifecycle of the containerized PiSi build farm",
	RunE:  common.DefaultRunE,
}

func init() {
	farmCmd.AddCommand(startCmd)
	farmCmd.AddCommand(stopCmd)
	farmCmd.AddCommand(installCmd)
	farmCmd.AddCommand(deleteCmd)
	farmCmd.AddCommand(reinstallCmd)
	farmCmd.AddCommand(statusCmd)
}

func GetCmd() *cobra.Command {
	return farmCmd
}

// newClient builds the runtime client from the active configuration.
func newClient() docker.Client {
	cfg := config.Get().Docker

	return docker.NewCLIClient(
		docker.WithBinary(cfg.Binary),
		docker.WithServiceName(cfg.Service),
		docker.WithManagedLabel(core.ManagedLabel, core.ManagedLabelValue),
		docker.WithLogger(*logx.As()),
	)
}

// farmSpec assembles the container run specification from the active
// configuration. The container-side mount points are fixed; only the
// host-side directories come from config.
func farmSpec() workflows.FarmSpec {
	cfg := config.Get().Farm

	return workflows.FarmSpec{
		ImageRef: cfg.Image,
		Run: docker.RunSpec{
			Image:       cfg.Image,
			Name:        cfg.ContainerName,
			Labels:      map[string]string{core.ManagedLabel: core.ManagedLabelValue},
			SecurityOpt: []string{core.SeccompUnconfined},
			Mounts: []docker.Mount{
				{HostPath: cfg.Mounts.Repository, ContainerPath: core.MountPointRepository},
				{HostPath: cfg.Mounts.Archives, ContainerPath: core.MountPointArchives},
				{HostPath: cfg.Mounts.Packages, ContainerPath: core.MountPointPackages},
				{HostPath: cfg.Mounts.Database, ContainerPath: core.MountPointDatabase},
			},
			Command: core.DefaultShell,
		},
	}
}

// RunOperation dispatches one lifecycle operation under the instance lock.
// Install and reinstall run the host preflight checks before touching the
// runtime.
func RunOperation(ctx context.Context, op core.Operation) error {
	release, err := common.AcquireProcessLock(ctx)
	if err != nil {
		return err
	}
	defer release()

	client := newClient()
	spec := farmSpec()

	logx.As().Debug().Str("operation", op.String()).Msg("Dispatching farm operation")

	switch op {
	case core.OpStart:
		common.RunWorkflow(ctx, workflows.NewStartWorkflow(client, spec.Run.Name))
	case core.OpStop:
		common.RunWorkflow(ctx, workflows.NewStopWorkflow(client))
	case core.OpInstall:
		common.RunWorkflow(ctx, workflows.NewPreflightWorkflow())
		common.RunWorkflow(ctx, workflows.NewInstallWorkflow(client, spec))
	case core.OpDelete:
		common.RunWorkflow(ctx, workflows.NewDeleteWorkflow(client, spec.ImageRef))
	case core.OpReinstall:
		common.RunWorkflow(ctx, workflows.NewPreflightWorkflow())
		common.RunWorkflow(ctx, workflows.NewReinstallWorkflow(client, spec))
	default:
		return core.UnrecognizedSelectionError.New("unsupported operation: %s", op)
	}

	return nil
}
