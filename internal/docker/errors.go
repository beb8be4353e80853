// SPDX-License-Identifier: Apache-2.0

package docker

import (
	"strings"

	"github.com/pisilinux/farmctl/internal/core"
)

// classifyFailure maps a failed runtime command to the farm error taxonomy
// based on the stderr text the docker CLI emits. The raw stderr and exit
// status are preserved as error properties so the doctor can show them.
func classifyFailure(cmdline string, exitCode int, stderr string) error {
	msg := strings.ToLower(stderr)

	errType := core.CommandFailedError
	switch {
	case strings.Contains(msg, "cannot connect to the docker daemon"),
		strings.Contains(msg, "is the docker daemon running"):
		errType = core.DaemonUnavailableError
	case strings.Contains(msg, "no such image"),
		strings.Contains(msg, "manifest unknown"),
		strings.Contains(msg, "repository does not exist"):
		errType = core.ImageNotFoundError
	case strings.Contains(msg, "no such container"):
		errType = core.ContainerNotFoundError
	case strings.Contains(msg, "permission denied"),
		strings.Contains(msg, "got permission denied"):
		errType = core.PermissionDeniedError
	}

	return errType.New("runtime command failed: %s", cmdline).
		WithProperty(core.ErrPropertyCommand, cmdline).
		WithProperty(core.ErrPropertyExitStatus, exitCode).
		WithProperty(core.ErrPropertyStderr, strings.TrimSpace(stderr))
}
