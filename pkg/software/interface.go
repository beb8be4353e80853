// SPDX-License-Identifier: Apache-2.0

package software

import "github.com/bluet/syspkg"

// Package manages a single system package through the host's native package
// manager.
type Package interface {
	Name() string
	Install() (*syspkg.PackageInfo, error)
	Info() (*syspkg.PackageInfo, error)
	IsInstalled() bool
}
