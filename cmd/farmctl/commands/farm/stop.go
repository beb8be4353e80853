// SPDX-License-Identifier: Apache-2.0

package farm

import (
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/internal/core"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the farm container",
	Long:  "Stop every managed container; a no-op when none exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunOperation(cmd.Context(), core.OpStop)
	},
}
