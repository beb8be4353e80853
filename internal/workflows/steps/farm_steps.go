// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"

	"github.com/pisilinux/farmctl/internal/core"
	"github.com/pisilinux/farmctl/internal/docker"
	"github.com/pisilinux/farmctl/internal/workflows/notify"
)

// EnsureDaemonRunning starts the container runtime daemon if it is not active.
func EnsureDaemonRunning(client docker.Client) automa.Builder {
	return automa.NewStepBuilder().WithId(EnsureDaemonStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := client.EnsureDaemonRunning(ctx); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			logx.As().Info().Msg("Container runtime daemon is running")
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Ensuring container runtime daemon is running")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Container runtime daemon is not available")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Container runtime daemon check completed")
		})
}

// StartManagedContainers starts every container carrying the farm ownership
// label. An empty set is a failure: the farm has not been installed yet.
func StartManagedContainers(client docker.Client) automa.Builder {
	return automa.NewStepBuilder().WithId(StartContainersStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			meta := map[string]string{}

			containers, err := client.ListContainers(ctx)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if len(containers) == 0 {
				return automa.FailureReport(stp,
					automa.WithError(
						core.ContainerNotFoundError.New("no managed farm container exists").
							WithProperty(core.ErrPropertyResolution,
								"Run 'farmctl farm install' to create the farm container first.")))
			}

			for _, id := range containers {
				if err := client.Start(ctx, id); err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
				logx.As().Info().Str("container_id", id).Msg("Started container")
			}

			meta[StartedByThisStep] = "true"
			meta[ContainerCountKey] = strconv.Itoa(len(containers))
			return automa.SuccessReport(stp, automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting managed farm containers")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to start managed farm containers")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Managed farm containers started")
		})
}

// StopManagedContainers stops every container carrying the farm ownership
// label. No containers is a no-op, not a failure.
func StopManagedContainers(client docker.Client) automa.Builder {
	return automa.NewStepBuilder().WithId(StopContainersStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			meta := map[string]string{}

			containers, err := client.ListContainers(ctx)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			for _, id := range containers {
				if err := client.Stop(ctx, id); err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
				logx.As().Info().Str("container_id", id).Msg("Stopped container")
			}

			meta[StoppedByThisStep] = "true"
			meta[ContainerCountKey] = strconv.Itoa(len(containers))
			return automa.SuccessReport(stp, automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Stopping managed farm containers")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to stop managed farm containers")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Managed farm containers stopped")
		})
}

// AttachFarmContainer connects the operator terminal to the named farm
// container. Blocks until the container process exits or the operator
// detaches.
func AttachFarmContainer(client docker.Client, containerName string) automa.Builder {
	return automa.NewStepBuilder().WithId(AttachFarmStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			logx.As().Info().Str("container", containerName).
				Msg("Attaching to farm container, detach with CTRL-p CTRL-q")

			if err := client.Attach(ctx, containerName); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Attaching to farm container %q", containerName)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to attach to farm container")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Detached from farm container")
		})
}

// EnsureMountDirectories creates the host-side directories of the farm bind
// mounts. Existing directories are left untouched.
func EnsureMountDirectories(mounts []docker.Mount) automa.Builder {
	return automa.NewStepBuilder().WithId(EnsureMountDirsStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			for _, m := range mounts {
				if err := os.MkdirAll(m.HostPath, core.DefaultDirPerm); err != nil {
					return automa.FailureReport(stp,
						automa.WithError(errorx.InternalError.Wrap(err,
							"failed to create mount directory: %s", m.HostPath)))
				}
				logx.As().Debug().Str("dir", m.HostPath).Msg("Ensured mount directory")
			}

			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Creating host directories for farm mounts")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to create host mount directories")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Host mount directories ready")
		})
}

// CreateFarmContainer creates and starts the farm container from the run
// spec. The new container ID is recorded in the step report.
func CreateFarmContainer(client docker.Client, spec docker.RunSpec) automa.Builder {
	return automa.NewStepBuilder().WithId(CreateContainerStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			meta := map[string]string{}

			id, err := client.RunDetached(ctx, spec)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			logx.As().Info().
				Str("container_id", id).
				Str("image", spec.Image).
				Msg("Created farm container")

			meta[CreatedByThisStep] = "true"
			meta[ContainerIdKey] = id
			stp.State().Local().Set(CreatedByThisStep, true)

			return automa.SuccessReport(stp, automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Creating farm container from image %q", spec.Image)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to create farm container")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Farm container created")
		})
}

// PruneRuntime removes unused runtime data: stopped containers, dangling
// images and build cache.
func PruneRuntime(client docker.Client) automa.Builder {
	return automa.NewStepBuilder().WithId(PruneRuntimeStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := client.PruneAll(ctx); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Pruning unused runtime data")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to prune runtime data")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Runtime data pruned")
		})
}

// RemoveManagedContainers force-removes every container carrying the farm
// ownership label, running or not.
func RemoveManagedContainers(client docker.Client) automa.Builder {
	return automa.NewStepBuilder().WithId(RemoveContainersStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			meta := map[string]string{}

			containers, err := client.ListContainers(ctx)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			for _, id := range containers {
				if err := client.Remove(ctx, id); err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
				logx.As().Info().Str("container_id", id).Msg("Removed container")
			}

			meta[RemovedByThisStep] = "true"
			meta[ContainerCountKey] = strconv.Itoa(len(containers))
			return automa.SuccessReport(stp, automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Removing managed farm containers")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to remove managed farm containers")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Managed farm containers removed")
		})
}

// RemoveFarmImage removes the farm image by its full reference, name plus
// tag. The image may already be gone when the farm was never installed; that
// is recorded, not failed.
func RemoveFarmImage(client docker.Client, imageRef string) automa.Builder {
	return automa.NewStepBuilder().WithId(RemoveImageStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			meta := map[string]string{}

			exists, err := client.ImageExists(ctx, imageRef)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if !exists {
				logx.As().Info().Str("image", imageRef).Msg("Farm image already absent")
				meta[AlreadyAbsent] = "true"
				return automa.SuccessReport(stp, automa.WithMetadata(meta))
			}

			if err := client.RemoveImage(ctx, imageRef); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			logx.As().Info().Str("image", imageRef).Msg("Removed farm image")
			meta[RemovedByThisStep] = "true"
			return automa.SuccessReport(stp, automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, fmt.Sprintf("Removing farm image %q", imageRef))
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to remove farm image")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Farm image removal completed")
		})
}
