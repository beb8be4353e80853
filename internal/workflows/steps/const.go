// SPDX-License-Identifier: Apache-2.0

package steps

const (
	EnsureDaemonStepId     = "ensure-runtime-daemon"
	StartContainersStepId  = "start-managed-containers"
	StopContainersStepId   = "stop-managed-containers"
	AttachFarmStepId       = "attach-farm-container"
	EnsureMountDirsStepId  = "ensure-mount-directories"
	CreateContainerStepId  = "create-farm-container"
	PruneRuntimeStepId     = "prune-runtime"
	RemoveContainersStepId = "remove-managed-containers"
	RemoveImageStepId      = "remove-farm-image"
)

// Metadata keys reported by the steps.
const (
	StartedByThisStep = "started"
	StoppedByThisStep = "stopped"
	RemovedByThisStep = "removed"
	CreatedByThisStep = "created"
	AlreadyAbsent     = "alreadyAbsent"
	ContainerIdKey    = "containerId"
	ContainerCountKey = "containerCount"
)
