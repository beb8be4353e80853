// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"github.com/automa-saga/automa"

	"github.com/pisilinux/farmctl/internal/docker"
	"github.com/pisilinux/farmctl/internal/workflows/steps"
)

// FarmSpec bundles what the lifecycle workflows need to know about the farm:
// how to create the container and how to address its image afterwards.
type FarmSpec struct {
	Run      docker.RunSpec
	ImageRef string
}

// NewStartWorkflow starts every managed container and attaches the operator
// terminal to the farm container.
func NewStartWorkflow(client docker.Client, containerName string) *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().WithId("farm-start-workflow").Steps(
		steps.EnsureDaemonRunning(client),
		steps.StartManagedContainers(client),
		steps.AttachFarmContainer(client, containerName),
	)
}

// NewStopWorkflow stops every managed container. Safe to run when none exist.
func NewStopWorkflow(client docker.Client) *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().WithId("farm-stop-workflow").Steps(
		steps.EnsureDaemonRunning(client),
		steps.StopManagedContainers(client),
	)
}

// NewInstallWorkflow provisions a fresh farm container and drops the operator
// into its shell.
func NewInstallWorkflow(client docker.Client, spec FarmSpec) *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().WithId("farm-install-workflow").Steps(
		installSteps(client, spec)...,
	)
}

// NewDeleteWorkflow tears the farm down: prunes unused runtime data, removes
// every managed container and removes the farm image by its full reference.
func NewDeleteWorkflow(client docker.Client, imageRef string) *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().WithId("farm-delete-workflow").Steps(
		append([]automa.Builder{steps.EnsureDaemonRunning(client)},
			deleteSteps(client, imageRef)...)...,
	)
}

// NewReinstallWorkflow deletes the farm and installs it again in one pass.
// The resulting container is observably identical to a fresh install.
func NewReinstallWorkflow(client docker.Client, spec FarmSpec) *automa.WorkflowBuilder {
	builders := []automa.Builder{steps.EnsureDaemonRunning(client)}
	builders = append(builders, deleteSteps(client, spec.ImageRef)...)
	builders = append(builders,
		steps.EnsureMountDirectories(spec.Run.Mounts),
		steps.CreateFarmContainer(client, spec.Run),
		steps.AttachFarmContainer(client, spec.Run.Name),
	)

	return automa.NewWorkflowBuilder().WithId("farm-reinstall-workflow").Steps(builders...)
}

func installSteps(client docker.Client, spec FarmSpec) []automa.Builder {
	return []automa.Builder{
		steps.EnsureDaemonRunning(client),
		steps.EnsureMountDirectories(spec.Run.Mounts),
		steps.CreateFarmContainer(client, spec.Run),
		steps.AttachFarmContainer(client, spec.Run.Name),
	}
}

func deleteSteps(client docker.Client, imageRef string) []automa.Builder {
	return []automa.Builder{
		steps.PruneRuntime(client),
		steps.RemoveManagedContainers(client),
		steps.RemoveFarmImage(client, imageRef),
	}
}
