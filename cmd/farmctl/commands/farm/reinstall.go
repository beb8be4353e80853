// SPDX-License-Identifier: Apache-2.0

package farm

import (
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/internal/core"
)

var reinstallCmd = &cobra.Command{
	Use:   "reinstall",
	Short: "Delete the farm and install it again",
	Long:  "Tear the farm down and provision a fresh container in one pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunOperation(cmd.Context(), core.OpReinstall)
	},
}
