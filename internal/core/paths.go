// SPDX-License-Identifier: Apache-2.0

package core

import "path"

// WorkingPaths groups the directories farmctl writes to on the host.
type WorkingPaths struct {
	HomeDir        string
	LogsDir        string
	DiagnosticsDir string
	LockFile       string
}

var workingPaths = WorkingPaths{
	HomeDir:        FarmHomeDir,
	LogsDir:        path.Join(FarmHomeDir, "logs"),
	DiagnosticsDir: path.Join(FarmHomeDir, "diagnostics"),
	LockFile:       path.Join(FarmHomeDir, ".farmctl.lock"),
}

// Paths returns the host directories used by farmctl itself.
func Paths() WorkingPaths {
	return workingPaths
}
