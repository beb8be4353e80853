// SPDX-License-Identifier: Apache-2.0

package farm

import (
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/internal/core"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the farm container and attach to it",
	Long:  "Start every managed container and attach the terminal to the farm container",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunOperation(cmd.Context(), core.OpStart)
	},
}
