// SPDX-License-Identifier: Apache-2.0

package farm

import (
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/internal/core"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install a fresh farm container",
	Long:  "Run host preflight checks, create the farm container with its bind mounts and attach to it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunOperation(cmd.Context(), core.OpInstall)
	},
}
