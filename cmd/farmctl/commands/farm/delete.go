// SPDX-License-Identifier: Apache-2.0

package farm

import (
	"github.com/spf13/cobra"

	"github.com/pisilinux/farmctl/internal/core"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the farm container and its image",
	Long:  "Prune unused runtime data, remove every managed container and remove the farm image",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunOperation(cmd.Context(), core.OpDelete)
	},
}
