// SPDX-License-Identifier: Apache-2.0

package core

import "github.com/joomcode/errorx"

// Error taxonomy for farm operations. Every external runtime command failure
// is classified into one of these types so that the doctor can attach a
// concrete resolution instead of passing the raw runtime stderr through.
var (
	ErrNamespace = errorx.NewNamespace("farm")

	DaemonUnavailableError = ErrNamespace.NewType("daemon_unavailable")
	ImageNotFoundError     = ErrNamespace.NewType("image_not_found", errorx.NotFound())
	ContainerNotFoundError = ErrNamespace.NewType("container_not_found", errorx.NotFound())
	PermissionDeniedError  = ErrNamespace.NewType("permission_denied")
	CommandFailedError     = ErrNamespace.NewType("command_failed")

	UnrecognizedSelectionError = ErrNamespace.NewType("unrecognized_selection")
)

// Properties attached to classified errors for diagnosis output.
var (
	ErrPropertyCommand    = errorx.RegisterPrintableProperty("command")
	ErrPropertyExitStatus = errorx.RegisterPrintableProperty("exit_status")
	ErrPropertyStderr     = errorx.RegisterPrintableProperty("stderr")
	ErrPropertyResolution = errorx.RegisterProperty("resolution")
)
