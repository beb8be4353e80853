// SPDX-License-Identifier: Apache-2.0

package core

import "path"

const (
	DefaultDirPerm = 0o755

	// ImageRef is the canonical farm image reference, name plus tag.
	// It is the single constant used both when the container is created and
	// when the image is removed. The historical tooling removed the image by
	// bare name while creating it from the tagged reference, which left the
	// tagged image behind on reinstall; a single constant makes that
	// mismatch impossible.
	ImageRef = "pisilinux/farm:latest"

	// ContainerName is the well-known name of the managed farm container.
	ContainerName = "farm"

	// ManagedLabel marks containers owned by farmctl. Lifecycle operations
	// address containers through this label instead of every container on
	// the host.
	ManagedLabel      = "org.pisilinux.farm"
	ManagedLabelValue = "managed"

	// DockerService is the systemd unit of the container runtime daemon.
	DockerService = "docker.service"

	// SeccompUnconfined relaxes the syscall filter for the build container.
	// PiSi builds run chroot/mount heavy actions that the default profile
	// rejects.
	SeccompUnconfined = "seccomp=unconfined"
)

// Container-side mount points of the farm container. These are fixed: the
// build environment inside the image expects them at exactly these paths.
// Only the host-side directories are configurable.
const (
	MountPointRepository = "/git/repository"
	MountPointArchives   = "/var/cache/pisi/archives"
	MountPointPackages   = "/var/cache/pisi/packages"
	MountPointDatabase   = "/var/lib/pisi"
)

// DefaultShell is the primary process of the farm container.
var DefaultShell = []string{"/bin/bash"}

var (
	FarmHomeDir = "/var/lib/farm"

	// Default host-side directories for the four bind mounts.
	DefaultRepositoryDir = path.Join(FarmHomeDir, "repository")
	DefaultArchivesDir   = path.Join(FarmHomeDir, "archives")
	DefaultPackagesDir   = path.Join(FarmHomeDir, "packages")
	DefaultDatabaseDir   = path.Join(FarmHomeDir, "db")
)
