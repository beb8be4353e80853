// SPDX-License-Identifier: Apache-2.0

package software

import "github.com/bluet/syspkg/manager"

// NewDocker creates an installer for the container runtime package. The
// package name is "docker" on most distributions including PiSi Linux;
// Debian/Ubuntu ship it as "docker.io" but also provide a "docker"
// transitional package.
func NewDocker() (Package, error) {
	return NewPackageInstaller(WithPackageName("docker"), WithPackageOptions(manager.Options{AssumeYes: true}))
}
