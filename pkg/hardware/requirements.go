// SPDX-License-Identifier: Apache-2.0

package hardware

import "github.com/joomcode/errorx"

// Spec declares the minimum host resources for running the farm container.
// PiSi builds are disk hungry: the archive and package caches grow with every
// build, so the storage floor matters more than CPU.
type Spec struct {
	MinMemoryGB  uint64
	MinStorageGB uint64
}

// FarmSpec returns the resource requirements for a package-building farm host.
func FarmSpec() Spec {
	return Spec{
		MinMemoryGB:  2,
		MinStorageGB: 20,
	}
}

// Validate checks the host profile against the spec.
func (s Spec) Validate(profile HostProfile) error {
	if mem := profile.GetTotalMemoryGB(); mem < s.MinMemoryGB {
		return errorx.IllegalState.New(
			"insufficient memory: %dGB available, %dGB required", mem, s.MinMemoryGB)
	}

	if storage := profile.GetTotalStorageGB(); storage < s.MinStorageGB {
		return errorx.IllegalState.New(
			"insufficient storage: %dGB available, %dGB required", storage, s.MinStorageGB)
	}

	return nil
}
