// SPDX-License-Identifier: Apache-2.0

package docker

import "context"

//go:generate mockgen -source=interface.go -destination=client_mock.go -package=docker

// Client is the narrow surface farmctl needs from the container runtime.
// Every method wraps one runtime CLI invocation and returns a classified
// error on failure; the dispatch logic never parses runtime output itself.
type Client interface {
	// EnsureDaemonRunning starts the runtime daemon if it is not active.
	// Idempotent when the daemon is already running.
	EnsureDaemonRunning(ctx context.Context) error

	// ListContainers returns the IDs of all managed containers, running or
	// stopped, selected by the farmctl ownership label.
	ListContainers(ctx context.Context) ([]string, error)

	Start(ctx context.Context, containerID string) error
	Stop(ctx context.Context, containerID string) error

	// Remove force-removes a container, running or not.
	Remove(ctx context.Context, containerID string) error

	// RunDetached creates and starts a container from the spec and returns
	// the new container ID.
	RunDetached(ctx context.Context, spec RunSpec) (string, error)

	// PruneAll removes unused runtime data: stopped containers, dangling
	// images and build cache.
	PruneAll(ctx context.Context) error

	// RemoveImage removes an image by its full reference, name plus tag.
	RemoveImage(ctx context.Context, imageRef string) error

	// ImageExists reports whether the image reference is present locally.
	ImageExists(ctx context.Context, imageRef string) (bool, error)

	// Attach connects the operator's terminal to the container's primary
	// process. Blocks until the process exits or the operator detaches.
	Attach(ctx context.Context, containerID string) error
}
